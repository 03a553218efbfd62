package dbmodels

import (
	"f1viz-backend/models"

	"github.com/lib/pq"
)

// CatalogEntry backs the dashboard drop-downs: one row per driver with the
// lap numbers that have telemetry for the session.
type CatalogEntry struct {
	BaseModel
	Season  int                `gorm:"index:idx_catalog_key,unique"`
	Event   string             `gorm:"type:varchar(100);index:idx_catalog_key,unique"`
	Session models.SessionKind `gorm:"type:varchar(20);index:idx_catalog_key,unique"`
	Driver  string             `gorm:"type:varchar(10);index:idx_catalog_key,unique"`
	Laps    pq.Int64Array      `gorm:"type:integer[]"`
}
