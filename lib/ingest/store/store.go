package ingestjobstore

import (
	"f1viz-backend/models"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.IngestJob) (id string, err error)
	SetRunning(id string) error
	SetDone(id string, lapCount, sampleCount int) error
	SetFailed(id string, message string) error
	GetByID(id string) (*dbmodels.IngestJob, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.IngestJob) (string, error) {
	rec.Status = models.IngestStatusQueued
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to create ingest job")
	}
	return rec.ID, nil
}

func (i impl) SetRunning(id string) error {
	return i.update(id, map[string]interface{}{
		"status": models.IngestStatusRunning,
	})
}

func (i impl) SetDone(id string, lapCount, sampleCount int) error {
	return i.update(id, map[string]interface{}{
		"status":       models.IngestStatusDone,
		"lap_count":    lapCount,
		"sample_count": sampleCount,
		"message":      "",
	})
}

func (i impl) SetFailed(id string, message string) error {
	return i.update(id, map[string]interface{}{
		"status":  models.IngestStatusFailed,
		"message": message,
	})
}

func (i impl) update(id string, values map[string]interface{}) error {
	err := i.db.
		Model(dbmodels.IngestJob{}).
		Where("id = ?", id).
		Updates(values).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to update ingest job")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.IngestJob, error) {
	rec := dbmodels.IngestJob{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to look up ingest job")
	}
	return &rec, nil
}
