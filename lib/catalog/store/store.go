package catalogstore

import (
	"f1viz-backend/models"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Upsert(rec dbmodels.CatalogEntry) error
	Seasons() ([]int, error)
	Events(season int) ([]string, error)
	Sessions(season int, event string) ([]models.SessionKind, error)
	Drivers(season int, event string, session models.SessionKind) ([]string, error)
	GetEntry(season int, event string, session models.SessionKind, driver string) (*dbmodels.CatalogEntry, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Upsert(rec dbmodels.CatalogEntry) error {
	existing := dbmodels.CatalogEntry{}
	err := i.db.
		Where("season = ? AND event = ? AND session = ? AND driver = ?",
			rec.Season, rec.Event, rec.Session, rec.Driver).
		First(&existing).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "failed to look up catalog entry")
		}
		if err = i.db.Create(&rec).Error; err != nil {
			return errors.Wrap(err, "failed to create catalog entry")
		}
		return nil
	}
	existing.Laps = rec.Laps
	if err = i.db.Save(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to update catalog entry")
	}
	return nil
}

func (i impl) Seasons() ([]int, error) {
	var result []int
	err := i.db.
		Model(dbmodels.CatalogEntry{}).
		Distinct("season").
		Order("season").
		Pluck("season", &result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seasons")
	}
	return result, nil
}

func (i impl) Events(season int) ([]string, error) {
	var result []string
	err := i.db.
		Model(dbmodels.CatalogEntry{}).
		Where("season = ?", season).
		Distinct("event").
		Order("event").
		Pluck("event", &result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}
	return result, nil
}

func (i impl) Sessions(season int, event string) ([]models.SessionKind, error) {
	var result []models.SessionKind
	err := i.db.
		Model(dbmodels.CatalogEntry{}).
		Where("season = ? AND event = ?", season, event).
		Distinct("session").
		Order("session").
		Pluck("session", &result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}
	return result, nil
}

func (i impl) Drivers(season int, event string, session models.SessionKind) ([]string, error) {
	var result []string
	err := i.db.
		Model(dbmodels.CatalogEntry{}).
		Where("season = ? AND event = ? AND session = ?", season, event, session).
		Distinct("driver").
		Order("driver").
		Pluck("driver", &result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drivers")
	}
	return result, nil
}

func (i impl) GetEntry(season int, event string, session models.SessionKind, driver string) (*dbmodels.CatalogEntry, error) {
	rec := dbmodels.CatalogEntry{}
	err := i.db.
		Where("season = ? AND event = ? AND session = ? AND driver = ?", season, event, session, driver).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to look up catalog entry")
	}
	return &rec, nil
}
