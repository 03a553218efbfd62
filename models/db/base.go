package dbmodels

import (
	"time"
)

// BaseModel is embedded by every table: uuid primary key generated by the
// uuid-ossp extension plus audit timestamps.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
