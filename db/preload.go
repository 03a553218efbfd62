package db

import (
	teamcolorstore "f1viz-backend/lib/teamcolors/store"
	dbmodels "f1viz-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillTeamColors()
}

// 2023 team colors keyed by driver abbreviation, used by the delta chart
var teamColors2023 = map[string]string{
	"HAM": "rgba(0, 210, 190, 0.9)",
	"RUS": "rgba(0, 210, 190, 0.9)",
	"LEC": "rgba(220, 0, 0, 0.9)",
	"SAI": "rgba(220, 0, 0, 0.9)",
	"VER": "rgba(6, 0, 239, 0.9)",
	"PER": "rgba(6, 0, 239, 0.9)",
	"GAS": "rgba(0, 144, 255, 0.9)",
	"OCO": "rgba(0, 144, 255, 0.9)",
	"HUL": "rgba(255, 255, 255, 0.9)",
	"MAG": "rgba(255, 255, 255, 0.9)",
	"ALO": "rgba(0, 111, 98, 0.9)",
	"STR": "rgba(0, 111, 98, 0.9)",
	"DEV": "rgba(43, 69, 98, 0.9)",
	"TSU": "rgba(43, 69, 98, 0.9)",
	"NOR": "rgba(255, 135, 0, 0.9)",
	"PIA": "rgba(255, 135, 0, 0.9)",
	"BOT": "rgba(144, 0, 0, 0.9)",
	"ZHO": "rgba(144, 0, 0, 0.9)",
	"SAR": "rgba(0, 90, 255, 0.9)",
	"ALB": "rgba(0, 90, 255, 0.9)",
	"DRU": "rgba(0, 111, 98, 0.9)",
	"RIC": "rgba(43, 69, 98, 0.9)",
	"LAW": "rgba(43, 69, 98, 0.9)",
}

func fillTeamColors() {
	store := teamcolorstore.NewInstance(DB)
	for driver, color := range teamColors2023 {
		rec := dbmodels.TeamColor{
			Season: 2023,
			Driver: driver,
			Color:  color,
		}
		if err := store.Add(rec, true); err != nil {
			log.WithError(err).Error("failed to seed team colors")
			return
		}
	}
}
