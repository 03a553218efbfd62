package lapstore

import (
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	// ReplaceSessionLaps overwrites all stored laps of the session.
	ReplaceSessionLaps(sessionID string, laps []dbmodels.Lap) error
	ListBySession(sessionID string) ([]dbmodels.Lap, error)
	ListByDriver(sessionID, driver string) ([]dbmodels.Lap, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const insertBatchSize = 500

func (i impl) ReplaceSessionLaps(sessionID string, laps []dbmodels.Lap) error {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&dbmodels.Lap{}).Error; err != nil {
			return err
		}
		if len(laps) == 0 {
			return nil
		}
		return tx.CreateInBatches(laps, insertBatchSize).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to store session laps")
	}
	return nil
}

func (i impl) ListBySession(sessionID string) ([]dbmodels.Lap, error) {
	var result []dbmodels.Lap
	err := i.db.
		Model(dbmodels.Lap{}).
		Where("session_id = ?", sessionID).
		Order("driver, lap_number").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list session laps")
	}
	return result, nil
}

func (i impl) ListByDriver(sessionID, driver string) ([]dbmodels.Lap, error) {
	var result []dbmodels.Lap
	err := i.db.
		Model(dbmodels.Lap{}).
		Where("session_id = ? AND driver = ?", sessionID, driver).
		Order("lap_number").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list driver laps")
	}
	return result, nil
}
