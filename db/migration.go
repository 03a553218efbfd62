package db

import (
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Event{}); err != nil {
		return errors.Wrap(err, "failed to migrate Event")
	}
	if err := DB.AutoMigrate(&dbmodels.SessionRecord{}); err != nil {
		return errors.Wrap(err, "failed to migrate SessionRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.Lap{}); err != nil {
		return errors.Wrap(err, "failed to migrate Lap")
	}
	if err := DB.AutoMigrate(&dbmodels.TelemetrySample{}); err != nil {
		return errors.Wrap(err, "failed to migrate TelemetrySample")
	}
	if err := DB.AutoMigrate(&dbmodels.CatalogEntry{}); err != nil {
		return errors.Wrap(err, "failed to migrate CatalogEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.TeamColor{}); err != nil {
		return errors.Wrap(err, "failed to migrate TeamColor")
	}
	if err := DB.AutoMigrate(&dbmodels.IngestJob{}); err != nil {
		return errors.Wrap(err, "failed to migrate IngestJob")
	}
	log.Info("migrations finished")
	return nil
}
