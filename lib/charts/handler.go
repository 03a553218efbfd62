package charts

import (
	"f1viz-backend/db"
	eventstore "f1viz-backend/lib/events/store"
	lapstore "f1viz-backend/lib/laps/store"
	teamcolorstore "f1viz-backend/lib/teamcolors/store"
	initchecker "f1viz-backend/lib/utils/init-checker"
	"f1viz-backend/models"
	chartsapimodels "f1viz-backend/models/api/charts"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	LapTimeHeatmap(season int, event string, session models.SessionKind) (*chartsapimodels.LapTimeHeatmap, error)
	DeltaChart(season int, event string, session models.SessionKind) (*chartsapimodels.DeltaChart, error)
	TyreStrategy(season int, event string, session models.SessionKind) (*chartsapimodels.TyreStrategy, error)
	// SessionLaps feeds the xlsx export.
	SessionLaps(season int, event string, session models.SessionKind) ([]dbmodels.Lap, error)
}

var Instance Provider

var ErrNoData = errors.New("no data; try another selection")

func NewHandler() {
	instance := impl{
		events: eventstore.NewInstance(db.DB),
		laps:   lapstore.NewInstance(db.DB),
		colors: teamcolorstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"events", instance.events,
		"laps", instance.laps,
		"colors", instance.colors,
	)
	Instance = instance
}

type impl struct {
	events eventstore.Provider
	laps   lapstore.Provider
	colors teamcolorstore.Provider
}

func (i impl) SessionLaps(season int, event string, session models.SessionKind) ([]dbmodels.Lap, error) {
	rec, err := i.events.GetSession(season, event, session)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoData
	}
	laps, err := i.laps.ListBySession(rec.ID)
	if err != nil {
		return nil, err
	}
	if len(laps) == 0 {
		return nil, ErrNoData
	}
	return laps, nil
}

func (i impl) LapTimeHeatmap(season int, event string, session models.SessionKind) (*chartsapimodels.LapTimeHeatmap, error) {
	laps, err := i.sessionChartLaps(season, event, session)
	if err != nil {
		return nil, err
	}
	heatmap := BuildLapTimeHeatmap(laps)
	if heatmap.ZMin == 0 {
		// stored laps but none with a recorded time, the colorscale has no bounds
		return nil, ErrNoData
	}
	return &heatmap, nil
}

func (i impl) DeltaChart(season int, event string, session models.SessionKind) (*chartsapimodels.DeltaChart, error) {
	laps, err := i.sessionChartLaps(season, event, session)
	if err != nil {
		return nil, err
	}
	colors, err := i.colors.Map(season)
	if err != nil {
		return nil, err
	}
	chart := BuildDeltaChart(laps, colors)
	return &chart, nil
}

func (i impl) TyreStrategy(season int, event string, session models.SessionKind) (*chartsapimodels.TyreStrategy, error) {
	laps, err := i.sessionChartLaps(season, event, session)
	if err != nil {
		return nil, err
	}
	strategy := BuildTyreStrategy(laps)
	return &strategy, nil
}

func (i impl) sessionChartLaps(season int, event string, session models.SessionKind) ([]dbmodels.Lap, error) {
	if !session.HasLapCharts() {
		return nil, errors.New("lap charts are available for race and sprint sessions only")
	}
	return i.SessionLaps(season, event, session)
}
