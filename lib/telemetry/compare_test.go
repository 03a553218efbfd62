package telemetry

import (
	"fmt"
	"testing"

	"f1viz-backend/models"
	telemetryapimodels "f1viz-backend/models/api/telemetry"
	dbmodels "f1viz-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeEventStore struct{}

func (f fakeEventStore) UpsertEvent(season int, name string, round int) (*dbmodels.Event, error) {
	return nil, nil
}

func (f fakeEventStore) UpsertSession(eventID string, kind models.SessionKind) (*dbmodels.SessionRecord, error) {
	return nil, nil
}

func (f fakeEventStore) GetSession(season int, event string, kind models.SessionKind) (*dbmodels.SessionRecord, error) {
	rec := &dbmodels.SessionRecord{Kind: kind}
	rec.ID = fmt.Sprintf("session-%v", season)
	return rec, nil
}

type fakeLapStore struct{}

func (f fakeLapStore) ReplaceSessionLaps(sessionID string, laps []dbmodels.Lap) error {
	return nil
}

func (f fakeLapStore) ListBySession(sessionID string) ([]dbmodels.Lap, error) {
	return nil, nil
}

func (f fakeLapStore) ListByDriver(sessionID, driver string) ([]dbmodels.Lap, error) {
	return []dbmodels.Lap{{Driver: driver, LapNumber: 1, LapTimeMs: lapTime(90000)}}, nil
}

type fakeSampleStore struct{}

func (f fakeSampleStore) DeleteBySession(sessionID string) error {
	return nil
}

func (f fakeSampleStore) InsertBatch(samples []dbmodels.TelemetrySample) error {
	return nil
}

func (f fakeSampleStore) ListByLap(sessionID, driver string, lap int) ([]dbmodels.TelemetrySample, error) {
	return []dbmodels.TelemetrySample{
		{Distance: 0, Speed: 120},
		{Distance: 50, Speed: 240},
	}, nil
}

type fakeColorStore struct {
	bySeason map[int]map[string]string
}

func (f fakeColorStore) Add(rec dbmodels.TeamColor, skipDuplicate bool) error {
	return nil
}

func (f fakeColorStore) Map(season int) (map[string]string, error) {
	return f.bySeason[season], nil
}

func compareHandler(colors map[int]map[string]string) impl {
	return impl{
		events:  fakeEventStore{},
		laps:    fakeLapStore{},
		samples: fakeSampleStore{},
		colors:  fakeColorStore{bySeason: colors},
	}
}

func selection(season int, driver string) telemetryapimodels.Selection {
	return telemetryapimodels.Selection{
		Season:  season,
		Event:   "Monza",
		Session: models.SessionRace,
		Driver:  driver,
		Lap:     1,
	}
}

func TestCompare(t *testing.T) {
	t.Run(`same season shares one color table check`, func(t *testing.T) {
		handler := compareHandler(map[int]map[string]string{
			2023: {"VER": "rgba(30, 65, 255, 1)", "HAM": "rgba(108, 211, 191, 1)"},
		})
		view, err := handler.Compare(telemetryapimodels.CompareFilter{
			First:  selection(2023, "VER"),
			Second: selection(2023, "HAM"),
		})
		require.Nil(t, err)
		require.Equal(t, "rgba(30, 65, 255, 1)", view.First.Color)
		require.Equal(t, "rgba(108, 211, 191, 1)", view.Second.Color)
	})

	t.Run(`cross season picks each season's colors check`, func(t *testing.T) {
		handler := compareHandler(map[int]map[string]string{
			2022: {"HAM": "rgba(0, 210, 190, 1)"},
			2023: {"HAM": "rgba(108, 211, 191, 1)"},
		})
		view, err := handler.Compare(telemetryapimodels.CompareFilter{
			First:  selection(2023, "HAM"),
			Second: selection(2022, "HAM"),
		})
		require.Nil(t, err)
		require.Equal(t, "rgba(108, 211, 191, 1)", view.First.Color)
		require.Equal(t, "rgba(0, 210, 190, 1)", view.Second.Color)
	})

	t.Run(`teammates fall back on second color check`, func(t *testing.T) {
		handler := compareHandler(map[int]map[string]string{
			2023: {"VER": "rgba(30, 65, 255, 1)", "PER": "rgba(30, 65, 255, 1)"},
		})
		view, err := handler.Compare(telemetryapimodels.CompareFilter{
			First:  selection(2023, "VER"),
			Second: selection(2023, "PER"),
		})
		require.Nil(t, err)
		require.Equal(t, "rgba(30, 65, 255, 1)", view.First.Color)
		require.Equal(t, fallbackColor, view.Second.Color)
	})
}
