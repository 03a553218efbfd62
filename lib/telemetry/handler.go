package telemetry

import (
	"math"

	"f1viz-backend/db"
	eventstore "f1viz-backend/lib/events/store"
	lapstore "f1viz-backend/lib/laps/store"
	teamcolorstore "f1viz-backend/lib/teamcolors/store"
	telemetrystore "f1viz-backend/lib/telemetry/store"
	initchecker "f1viz-backend/lib/utils/init-checker"
	"f1viz-backend/models"
	telemetryapimodels "f1viz-backend/models/api/telemetry"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Compare(filter telemetryapimodels.CompareFilter) (*telemetryapimodels.CompareView, error)
	MapView(filter telemetryapimodels.MapFilter) (*telemetryapimodels.MapView, error)
}

var Instance Provider

var ErrNoData = errors.New("no data; try another selection")

// fallback trace color when both compared drivers share a team
const fallbackColor = "rgba(204, 136, 153, 0.9)"

// ParamFormats carries the axis/colorbar metadata for each telemetry
// parameter (mirrors the dashboard's plot formatting table).
var ParamFormats = map[models.TelemetryParam]telemetryapimodels.ParamFormat{
	models.ParamSpeed:    {Title: "Speed (kph)", CMin: 50, CMax: 350, YMin: 50, YMax: 435},
	models.ParamThrottle: {Title: "Throttle (%)", CMin: 0, CMax: 100, YMin: -0.25, YMax: 100.25},
	models.ParamBrake:    {Title: "Brake (%)", CMin: 0, CMax: 100, YMin: -0.25, YMax: 100.25},
	models.ParamGear:     {Title: "Gear", CMin: 1, CMax: 8, YMin: 0.5, YMax: 8.5},
}

func NewHandler() {
	instance := impl{
		events:  eventstore.NewInstance(db.DB),
		laps:    lapstore.NewInstance(db.DB),
		samples: telemetrystore.NewInstance(db.DB),
		colors:  teamcolorstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"events", instance.events,
		"laps", instance.laps,
		"samples", instance.samples,
		"colors", instance.colors,
	)
	Instance = instance
}

type impl struct {
	events  eventstore.Provider
	laps    lapstore.Provider
	samples telemetrystore.Provider
	colors  teamcolorstore.Provider
}

func (i impl) Compare(filter telemetryapimodels.CompareFilter) (*telemetryapimodels.CompareView, error) {
	first, err := i.buildTrace(filter.First)
	if err != nil {
		return nil, err
	}
	second, err := i.buildTrace(filter.Second)
	if err != nil {
		return nil, err
	}
	firstColors, err := i.colors.Map(filter.First.Season)
	if err != nil {
		return nil, err
	}
	secondColors := firstColors
	if filter.Second.Season != filter.First.Season {
		secondColors, err = i.colors.Map(filter.Second.Season)
		if err != nil {
			return nil, err
		}
	}
	first.Color = firstColors[first.Driver]
	second.Color = secondColors[second.Driver]
	if second.Color != "" && second.Color == first.Color {
		second.Color = fallbackColor
	}
	return &telemetryapimodels.CompareView{
		First:  *first,
		Second: *second,
	}, nil
}

func (i impl) MapView(filter telemetryapimodels.MapFilter) (*telemetryapimodels.MapView, error) {
	samples, fastestLap, err := i.lapSamples(filter.Selection)
	if err != nil {
		return nil, err
	}
	view := telemetryapimodels.MapView{
		Driver:     filter.Driver,
		Session:    filter.Session,
		Lap:        filter.Lap,
		FastestLap: fastestLap,
		Param:      filter.Param,
		Format:     ParamFormats[filter.Param],
		Points:     make([]telemetryapimodels.MapPoint, 0, len(samples)),
	}
	for _, sample := range samples {
		view.Points = append(view.Points, telemetryapimodels.MapPoint{
			X:        sample.X,
			Y:        sample.Y,
			Distance: sample.Distance,
			Value:    paramValue(sample, filter.Param),
		})
	}
	if filter.Distance != nil {
		// the selection may carry over from another lap, snap to the
		// closest point of the current one
		idx := closestPointIndex(samples, *filter.Distance)
		view.Selected = &view.Points[idx]
	}
	return &view, nil
}

func (i impl) buildTrace(sel telemetryapimodels.Selection) (*telemetryapimodels.LapTrace, error) {
	samples, fastestLap, err := i.lapSamples(sel)
	if err != nil {
		return nil, err
	}
	trace := telemetryapimodels.LapTrace{
		Driver:     sel.Driver,
		Session:    sel.Session,
		Lap:        sel.Lap,
		FastestLap: fastestLap,
		Distance:   sel.Distance,
		Points:     make([]telemetryapimodels.TracePoint, 0, len(samples)),
	}
	for _, sample := range samples {
		trace.Points = append(trace.Points, telemetryapimodels.TracePoint{
			Distance: sample.Distance,
			Speed:    sample.Speed,
			Throttle: sample.Throttle,
			Brake:    sample.Brake,
			Gear:     sample.Gear,
		})
	}
	return &trace, nil
}

func (i impl) lapSamples(sel telemetryapimodels.Selection) ([]dbmodels.TelemetrySample, int, error) {
	rec, err := i.events.GetSession(sel.Season, sel.Event, sel.Session)
	if err != nil {
		return nil, 0, err
	}
	if rec == nil {
		return nil, 0, ErrNoData
	}
	samples, err := i.samples.ListByLap(rec.ID, sel.Driver, sel.Lap)
	if err != nil {
		return nil, 0, err
	}
	if len(samples) == 0 {
		return nil, 0, ErrNoData
	}
	driverLaps, err := i.laps.ListByDriver(rec.ID, sel.Driver)
	if err != nil {
		return nil, 0, err
	}
	return samples, fastestLapNumber(driverLaps), nil
}

func fastestLapNumber(laps []dbmodels.Lap) int {
	fastest := 0
	var best int64
	for _, lap := range laps {
		if lap.LapTimeMs == nil {
			continue
		}
		if fastest == 0 || *lap.LapTimeMs < best {
			best = *lap.LapTimeMs
			fastest = lap.LapNumber
		}
	}
	return fastest
}

func closestPointIndex(samples []dbmodels.TelemetrySample, distance float64) int {
	closest := 0
	bestGap := math.Inf(1)
	for idx, sample := range samples {
		gap := math.Abs(sample.Distance - distance)
		if gap < bestGap {
			bestGap = gap
			closest = idx
		}
	}
	return closest
}

func paramValue(sample dbmodels.TelemetrySample, param models.TelemetryParam) float64 {
	switch param {
	case models.ParamSpeed:
		return sample.Speed
	case models.ParamThrottle:
		return sample.Throttle
	case models.ParamBrake:
		return sample.Brake
	case models.ParamGear:
		return float64(sample.Gear)
	}
	return 0
}
