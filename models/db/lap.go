package dbmodels

import "strings"

type Lap struct {
	BaseModel
	SessionID     string `gorm:"type:varchar(36);index:idx_lap_session"`
	Session       *SessionRecord
	Driver        string `gorm:"type:varchar(10)"`
	DriverNumber  string `gorm:"type:varchar(10)"`
	LapNumber     int
	LapTimeMs     *int64 // nil when the provider reported no time for the lap
	Position      int
	DeltaWinner   *float64 // seconds behind the winner at this lap
	SessionTimeMs int64    // session elapsed time at lap completion
	PitInTimeMs   *int64
	PitStop       bool
	Stint         int
	Compound      string `gorm:"type:varchar(20)"`
	Yellow        bool
	Red           bool
	Safety        bool
	Virtual       bool
	Nominal       bool
}

// LapTimeSec converts the stored lap time to seconds for chart payloads.
func (l Lap) LapTimeSec() *float64 {
	if l.LapTimeMs == nil {
		return nil
	}
	sec := float64(*l.LapTimeMs) / 1000
	return &sec
}

// TrackStatusLabel renders the lap's track-status flags for exports.
func (l Lap) TrackStatusLabel() string {
	if l.Nominal {
		return ""
	}
	statuses := make([]string, 0, 4)
	if l.Red {
		statuses = append(statuses, "Red")
	}
	if l.Yellow {
		statuses = append(statuses, "Yellow")
	}
	if l.Safety {
		statuses = append(statuses, "Safety")
	}
	if l.Virtual {
		statuses = append(statuses, "Virtual")
	}
	return strings.Join(statuses, ", ")
}
