package dbmodels

import (
	"f1viz-backend/models"
)

type IngestJob struct {
	BaseModel
	Season      int
	Event       string             `gorm:"type:varchar(100)"`
	Session     models.SessionKind `gorm:"type:varchar(20)"`
	Status      models.IngestStatus
	Message     string
	LapCount    int
	SampleCount int
}
