package models

type SessionKind string

const (
	SessionRace       SessionKind = "Race"
	SessionSprint     SessionKind = "Sprint"
	SessionQualifying SessionKind = "Qualifying"
)

func (k SessionKind) IsValid() bool {
	switch k {
	case SessionRace, SessionSprint, SessionQualifying:
		return true
	}
	return false
}

// HasLapCharts reports whether the lap view (delta, tyres, heatmap) applies to the session.
func (k SessionKind) HasLapCharts() bool {
	return k == SessionRace || k == SessionSprint
}

type TelemetryParam string

const (
	ParamSpeed    TelemetryParam = "Speed"
	ParamThrottle TelemetryParam = "Throttle"
	ParamBrake    TelemetryParam = "Brake"
	ParamGear     TelemetryParam = "Gear"
)

func (p TelemetryParam) IsValid() bool {
	switch p {
	case ParamSpeed, ParamThrottle, ParamBrake, ParamGear:
		return true
	}
	return false
}

// Track status codes as reported by the timing provider.
const (
	TrackStatusYellow    = "2"
	TrackStatusSafetyCar = "4"
	TrackStatusRed       = "5"
	TrackStatusVirtualSC = "6"
)

type IngestStatus string

const (
	IngestStatusQueued  IngestStatus = "queued"
	IngestStatusRunning IngestStatus = "running"
	IngestStatusDone    IngestStatus = "done"
	IngestStatusFailed  IngestStatus = "failed"
)
