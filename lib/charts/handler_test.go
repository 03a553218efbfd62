package charts

import (
	"testing"

	"f1viz-backend/models"
	dbmodels "f1viz-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeEventStore struct {
	session *dbmodels.SessionRecord
}

func (f fakeEventStore) UpsertEvent(season int, name string, round int) (*dbmodels.Event, error) {
	return nil, nil
}

func (f fakeEventStore) UpsertSession(eventID string, kind models.SessionKind) (*dbmodels.SessionRecord, error) {
	return nil, nil
}

func (f fakeEventStore) GetSession(season int, event string, kind models.SessionKind) (*dbmodels.SessionRecord, error) {
	return f.session, nil
}

type fakeLapStore struct {
	laps []dbmodels.Lap
}

func (f fakeLapStore) ReplaceSessionLaps(sessionID string, laps []dbmodels.Lap) error {
	return nil
}

func (f fakeLapStore) ListBySession(sessionID string) ([]dbmodels.Lap, error) {
	return f.laps, nil
}

func (f fakeLapStore) ListByDriver(sessionID, driver string) ([]dbmodels.Lap, error) {
	return f.laps, nil
}

type fakeColorStore struct {
	colors map[string]string
}

func (f fakeColorStore) Add(rec dbmodels.TeamColor, skipDuplicate bool) error {
	return nil
}

func (f fakeColorStore) Map(season int) (map[string]string, error) {
	return f.colors, nil
}

func chartsHandler(laps []dbmodels.Lap) impl {
	session := &dbmodels.SessionRecord{Kind: models.SessionRace}
	session.ID = "session-1"
	return impl{
		events: fakeEventStore{session: session},
		laps:   fakeLapStore{laps: laps},
		colors: fakeColorStore{colors: map[string]string{}},
	}
}

func TestLapTimeHeatmapHandler(t *testing.T) {
	t.Run(`timed laps produce bounds check`, func(t *testing.T) {
		handler := chartsHandler([]dbmodels.Lap{
			{Driver: "VER", Position: 1, LapNumber: 1, LapTimeMs: lapTime(90)},
		})
		heatmap, err := handler.LapTimeHeatmap(2023, "Monza", models.SessionRace)
		require.Nil(t, err)
		require.Equal(t, 90.0, heatmap.ZMin)
	})

	t.Run(`laps without times report no data check`, func(t *testing.T) {
		handler := chartsHandler([]dbmodels.Lap{
			{Driver: "VER", Position: 1, LapNumber: 1},
			{Driver: "PER", Position: 2, LapNumber: 1},
		})
		_, err := handler.LapTimeHeatmap(2023, "Monza", models.SessionRace)
		require.ErrorIs(t, err, ErrNoData)
	})

	t.Run(`missing session reports no data check`, func(t *testing.T) {
		handler := chartsHandler(nil)
		handler.events = fakeEventStore{}
		_, err := handler.LapTimeHeatmap(2023, "Monza", models.SessionRace)
		require.ErrorIs(t, err, ErrNoData)
	})
}
