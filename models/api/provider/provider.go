package providerapimodels

// Payload shapes of the timing provider's JSON API.

type ScheduleResponse struct {
	Season int             `json:"season"`
	Events []ScheduleEvent `json:"events"`
}

type ScheduleEvent struct {
	Round    int      `json:"round"`
	Name     string   `json:"name"`
	Sessions []string `json:"sessions"`
}

type ResultsResponse struct {
	Results []DriverResult `json:"results"`
}

type DriverResult struct {
	Driver       string `json:"driver"` // three-letter abbreviation
	DriverNumber string `json:"driver_number"`
	Position     int    `json:"position"`
}

type LapsResponse struct {
	Laps []LapRecord `json:"laps"`
}

type LapRecord struct {
	Driver       string `json:"driver"`
	DriverNumber string `json:"driver_number"`
	LapNumber    int    `json:"lap_number"`
	LapTime      string `json:"lap_time,omitempty"` // "[h:]m:ss.fff", empty when not recorded
	Time         string `json:"time"`               // session elapsed at lap completion
	PitInTime    string `json:"pit_in_time,omitempty"`
	Stint        int    `json:"stint"`
	Compound     string `json:"compound"`
	TrackStatus  string `json:"track_status"` // concatenated status codes, e.g. "24"
}

type TelemetryResponse struct {
	Samples []TelemetrySample `json:"samples"`
}

type TelemetrySample struct {
	SessionTime float64 `json:"t"` // seconds from session start
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Speed       float64 `json:"speed"` // kph
	Gear        int     `json:"gear"`
	Throttle    float64 `json:"throttle"` // percent
	Brake       bool    `json:"brake"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
