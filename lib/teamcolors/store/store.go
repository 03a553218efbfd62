package teamcolorstore

import (
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Add(rec dbmodels.TeamColor, skipDuplicate bool) error
	// Map returns driver -> color for a season.
	Map(season int) (map[string]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Add(rec dbmodels.TeamColor, skipDuplicate bool) error {
	var rowCount int64
	err := i.db.
		Model(dbmodels.TeamColor{}).
		Where("season = ? AND driver = ?", rec.Season, rec.Driver).
		Count(&rowCount).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to check team color uniqueness")
	}
	if rowCount != 0 {
		if skipDuplicate {
			return nil
		}
		return errors.New("team color already exists")
	}
	if err = i.db.Create(&rec).Error; err != nil {
		return errors.Wrap(err, "failed to add team color")
	}
	return nil
}

func (i impl) Map(season int) (map[string]string, error) {
	var list []dbmodels.TeamColor
	err := i.db.
		Model(dbmodels.TeamColor{}).
		Where("season = ?", season).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team colors")
	}
	result := make(map[string]string, len(list))
	for _, rec := range list {
		result[rec.Driver] = rec.Color
	}
	return result, nil
}
