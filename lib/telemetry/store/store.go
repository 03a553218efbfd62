package telemetrystore

import (
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	// DeleteBySession clears the session's samples before a re-ingest.
	DeleteBySession(sessionID string) error
	InsertBatch(samples []dbmodels.TelemetrySample) error
	ListByLap(sessionID, driver string, lap int) ([]dbmodels.TelemetrySample, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const insertBatchSize = 1000

func (i impl) DeleteBySession(sessionID string) error {
	err := i.db.
		Where("session_id = ?", sessionID).
		Delete(&dbmodels.TelemetrySample{}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to delete session telemetry")
	}
	return nil
}

func (i impl) InsertBatch(samples []dbmodels.TelemetrySample) error {
	if len(samples) == 0 {
		return nil
	}
	err := i.db.CreateInBatches(samples, insertBatchSize).Error
	if err != nil {
		return errors.Wrap(err, "failed to store telemetry samples")
	}
	return nil
}

func (i impl) ListByLap(sessionID, driver string, lap int) ([]dbmodels.TelemetrySample, error) {
	var result []dbmodels.TelemetrySample
	err := i.db.
		Model(dbmodels.TelemetrySample{}).
		Where("session_id = ? AND driver = ? AND lap_number = ?", sessionID, driver, lap).
		Order("seq").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lap telemetry")
	}
	return result, nil
}
