package dbmodels

import (
	"f1viz-backend/models"
)

type Event struct {
	BaseModel
	Season int    `gorm:"index:idx_event_season_name,unique"`
	Name   string `gorm:"type:varchar(100);index:idx_event_season_name,unique"`
	Round  int
}

type SessionRecord struct {
	BaseModel
	EventID string `gorm:"type:varchar(36);index:idx_session_event_kind,unique"`
	Event   *Event
	Kind    models.SessionKind `gorm:"type:varchar(20);index:idx_session_event_kind,unique"`
}
