package catalogapimodels

import (
	"f1viz-backend/models"
)

type SeasonList struct {
	Seasons []int `json:"seasons"`
}

type EventList struct {
	Season int      `json:"season"`
	Events []string `json:"events"`
}

type SessionList struct {
	Season   int                  `json:"season"`
	Event    string               `json:"event"`
	Sessions []models.SessionKind `json:"sessions"`
}

type DriverList struct {
	Season  int                `json:"season"`
	Event   string             `json:"event"`
	Session models.SessionKind `json:"session"`
	Drivers []string           `json:"drivers"`
}

type LapList struct {
	Season  int                `json:"season"`
	Event   string             `json:"event"`
	Session models.SessionKind `json:"session"`
	Driver  string             `json:"driver"`
	Laps    []int              `json:"laps"`
}
