package eventstore

import (
	"f1viz-backend/models"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	UpsertEvent(season int, name string, round int) (*dbmodels.Event, error)
	UpsertSession(eventID string, kind models.SessionKind) (*dbmodels.SessionRecord, error)
	GetSession(season int, event string, kind models.SessionKind) (*dbmodels.SessionRecord, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) UpsertEvent(season int, name string, round int) (*dbmodels.Event, error) {
	rec := dbmodels.Event{}
	err := i.db.
		Where("season = ? AND name = ?", season, name).
		First(&rec).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "failed to look up event")
		}
		rec = dbmodels.Event{
			Season: season,
			Name:   name,
			Round:  round,
		}
		if err = i.db.Create(&rec).Error; err != nil {
			return nil, errors.Wrap(err, "failed to create event")
		}
		return &rec, nil
	}
	if round != 0 && rec.Round != round {
		rec.Round = round
		if err = i.db.Save(&rec).Error; err != nil {
			return nil, errors.Wrap(err, "failed to update event")
		}
	}
	return &rec, nil
}

func (i impl) UpsertSession(eventID string, kind models.SessionKind) (*dbmodels.SessionRecord, error) {
	rec := dbmodels.SessionRecord{}
	err := i.db.
		Where("event_id = ? AND kind = ?", eventID, kind).
		First(&rec).
		Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to look up session")
	}
	rec = dbmodels.SessionRecord{
		EventID: eventID,
		Kind:    kind,
	}
	if err = i.db.Create(&rec).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}
	return &rec, nil
}

func (i impl) GetSession(season int, event string, kind models.SessionKind) (*dbmodels.SessionRecord, error) {
	rec := dbmodels.SessionRecord{}
	err := i.db.
		Joins("JOIN events ON events.id = session_records.event_id").
		Where("events.season = ? AND events.name = ? AND session_records.kind = ?", season, event, kind).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to look up session")
	}
	return &rec, nil
}
