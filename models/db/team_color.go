package dbmodels

// TeamColor maps a driver to their team color for a season; seeded on start
// and used by the delta chart legend.
type TeamColor struct {
	BaseModel
	Season int    `gorm:"index:idx_team_color_key,unique"`
	Driver string `gorm:"type:varchar(10);index:idx_team_color_key,unique"`
	Color  string `gorm:"type:varchar(40)"`
}
