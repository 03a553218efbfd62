package chartsapimodels

// LapTimeHeatmap is the lap-time matrix for the heatmap view. Rows follow the
// Drivers order (final position descending, so the winner renders on top).
type LapTimeHeatmap struct {
	Drivers  []string     `json:"drivers"`
	Laps     []int        `json:"laps"`
	Times    [][]*float64 `json:"times"`     // seconds, null = no recorded time
	PitMarks [][]string   `json:"pit_marks"` // "*" where the driver pitted
	ZMin     float64      `json:"zmin"`      // fastest lap of the session
	ZMax     float64      `json:"zmax"`      // colorscale cap, fastest * 1.1
}

type DeltaChart struct {
	MaxDelta float64            `json:"max_delta"`
	Bands    []TrackStatusBand  `json:"bands"`
	Series   []DriverDeltaTrace `json:"series"`
}

// TrackStatusBand shades the laps the winner spent under a non-nominal track
// status (yellow/red flag, safety car).
type TrackStatusBand struct {
	Status string `json:"status"`
	Laps   []int  `json:"laps"`
}

type DriverDeltaTrace struct {
	Driver   string       `json:"driver"`
	Color    string       `json:"color,omitempty"`
	Dash     bool         `json:"dash"` // teammate already drawn in this color
	Points   []DeltaPoint `json:"points"`
	PitStops []DeltaPoint `json:"pit_stops"`
}

type DeltaPoint struct {
	Lap   int      `json:"lap"`
	Delta *float64 `json:"delta"` // seconds behind the winner
}

type TyreStrategy struct {
	MaxLap int     `json:"max_lap"`
	Stints []Stint `json:"stints"`
}

type Stint struct {
	Driver   string `json:"driver"`
	Stint    int    `json:"stint"`
	Compound string `json:"compound"`
	StartLap int    `json:"start_lap"`
	EndLap   int    `json:"end_lap"`
	Length   int    `json:"length"`
}
