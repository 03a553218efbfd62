package telemetryapimodels

import (
	"f1viz-backend/models"

	"github.com/pkg/errors"
)

// Selection identifies one driver's lap within an event.
type Selection struct {
	Season   int                `json:"season"`
	Event    string             `json:"event"`
	Session  models.SessionKind `json:"session"`
	Driver   string             `json:"driver"`
	Lap      int                `json:"lap"`
	Distance *float64           `json:"distance,omitempty"` // selected point on the map, meters
}

func (s Selection) Validate() error {
	if s.Season == 0 {
		return errors.New("season is required")
	}
	if s.Event == "" {
		return errors.New("event is required")
	}
	if !s.Session.IsValid() {
		return errors.New("unknown session")
	}
	if s.Driver == "" {
		return errors.New("driver is required")
	}
	if s.Lap < 1 {
		return errors.New("lap must be positive")
	}
	return nil
}

type CompareFilter struct {
	First  Selection `json:"first"`
	Second Selection `json:"second"`
}

func (f CompareFilter) Validate() error {
	if err := f.First.Validate(); err != nil {
		return err
	}
	return f.Second.Validate()
}

type MapFilter struct {
	Selection
	Param models.TelemetryParam `json:"param"`
}

func (f MapFilter) Validate() error {
	if err := f.Selection.Validate(); err != nil {
		return err
	}
	if !f.Param.IsValid() {
		return errors.New("unknown telemetry parameter")
	}
	return nil
}

type CompareView struct {
	First  LapTrace `json:"first"`
	Second LapTrace `json:"second"`
}

type LapTrace struct {
	Driver     string             `json:"driver"`
	Session    models.SessionKind `json:"session"`
	Lap        int                `json:"lap"`
	FastestLap int                `json:"fastest_lap"`
	Color      string             `json:"color,omitempty"`
	Distance   *float64           `json:"distance,omitempty"`
	Points     []TracePoint       `json:"points"`
}

type TracePoint struct {
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Throttle float64 `json:"throttle"`
	Brake    float64 `json:"brake"`
	Gear     int     `json:"gear"`
}

type MapView struct {
	Driver     string                `json:"driver"`
	Session    models.SessionKind    `json:"session"`
	Lap        int                   `json:"lap"`
	FastestLap int                   `json:"fastest_lap"`
	Param      models.TelemetryParam `json:"param"`
	Format     ParamFormat           `json:"format"`
	Points     []MapPoint            `json:"points"`
	Selected   *MapPoint             `json:"selected,omitempty"`
}

type MapPoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Distance float64 `json:"distance"`
	Value    float64 `json:"value"`
}

// ParamFormat carries the axis/colorbar metadata the dashboard uses to render
// a telemetry parameter.
type ParamFormat struct {
	Title string  `json:"title"`
	CMin  float64 `json:"cmin"`
	CMax  float64 `json:"cmax"`
	YMin  float64 `json:"ymin"`
	YMax  float64 `json:"ymax"`
}
