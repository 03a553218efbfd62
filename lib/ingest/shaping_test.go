package ingest

import (
	"testing"

	"f1viz-backend/models"
	providerapimodels "f1viz-backend/models/api/provider"

	"github.com/stretchr/testify/require"
)

func raceResults() []providerapimodels.DriverResult {
	return []providerapimodels.DriverResult{
		{Driver: "VER", DriverNumber: "1", Position: 1},
		{Driver: "PER", DriverNumber: "11", Position: 2},
	}
}

func TestShapeLaps(t *testing.T) {
	t.Run(`formation laps dropped check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "VER", DriverNumber: "1", LapNumber: 0, Time: "1:00.000"},
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000", LapTime: "1:30.000"},
		}
		laps, err := ShapeLaps(records, raceResults(), models.SessionRace)
		require.Nil(t, err)
		require.Len(t, laps, 1)
		require.Equal(t, 1, laps[0].LapNumber)
	})

	t.Run(`laps without session time skipped check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: ""},
			{Driver: "VER", DriverNumber: "1", LapNumber: 2, Time: "3:00.000"},
		}
		laps, err := ShapeLaps(records, raceResults(), models.SessionRace)
		require.Nil(t, err)
		require.Len(t, laps, 1)
		require.Equal(t, 2, laps[0].LapNumber)
	})

	t.Run(`lap time and pit stop parsing check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000", LapTime: "1:30.500", PitInTime: "2:29.000"},
			{Driver: "PER", DriverNumber: "11", LapNumber: 1, Time: "2:31.000"},
		}
		laps, err := ShapeLaps(records, raceResults(), models.SessionRace)
		require.Nil(t, err)
		require.Len(t, laps, 2)
		require.NotNil(t, laps[0].LapTimeMs)
		require.Equal(t, int64(90500), *laps[0].LapTimeMs)
		require.True(t, laps[0].PitStop)
		require.Nil(t, laps[1].LapTimeMs)
		require.False(t, laps[1].PitStop)
	})

	t.Run(`track status flags check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000", TrackStatus: "24"},
			{Driver: "VER", DriverNumber: "1", LapNumber: 2, Time: "4:30.000", TrackStatus: "5"},
			{Driver: "VER", DriverNumber: "1", LapNumber: 3, Time: "6:30.000", TrackStatus: "6"},
			{Driver: "VER", DriverNumber: "1", LapNumber: 4, Time: "8:30.000", TrackStatus: "1"},
		}
		laps, err := ShapeLaps(records, raceResults(), models.SessionRace)
		require.Nil(t, err)
		require.Len(t, laps, 4)

		require.True(t, laps[0].Yellow)
		require.True(t, laps[0].Safety)
		require.False(t, laps[0].Nominal)

		require.True(t, laps[1].Red)
		require.False(t, laps[1].Nominal)

		require.True(t, laps[2].Virtual)
		require.False(t, laps[2].Nominal)

		require.False(t, laps[3].Yellow)
		require.False(t, laps[3].Red)
		require.False(t, laps[3].Safety)
		require.False(t, laps[3].Virtual)
		require.True(t, laps[3].Nominal)
	})

	t.Run(`positions from results check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "PER", DriverNumber: "11", LapNumber: 1, Time: "2:31.000"},
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000"},
		}
		laps, err := ShapeLaps(records, raceResults(), models.SessionRace)
		require.Nil(t, err)
		require.Equal(t, 2, laps[0].Position)
		require.Equal(t, 1, laps[1].Position)
	})

	t.Run(`no classification data check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000"},
		}
		_, err := ShapeLaps(records, nil, models.SessionRace)
		require.NotNil(t, err)
	})

	t.Run(`sprint positions derived from laps check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			// OCO retires after lap 1, VER beats PER on the last lap
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000"},
			{Driver: "VER", DriverNumber: "1", LapNumber: 2, Time: "4:00.000"},
			{Driver: "PER", DriverNumber: "11", LapNumber: 1, Time: "2:31.000"},
			{Driver: "PER", DriverNumber: "11", LapNumber: 2, Time: "4:02.000"},
			{Driver: "OCO", DriverNumber: "31", LapNumber: 1, Time: "2:40.000"},
		}
		laps, err := ShapeLaps(records, nil, models.SessionSprint)
		require.Nil(t, err)

		positions := make(map[string]int)
		for _, lap := range laps {
			positions[lap.Driver] = lap.Position
		}
		require.Equal(t, 1, positions["VER"])
		require.Equal(t, 2, positions["PER"])
		require.Equal(t, 3, positions["OCO"])
	})

	t.Run(`delta to winner check`, func(t *testing.T) {
		records := []providerapimodels.LapRecord{
			{Driver: "VER", DriverNumber: "1", LapNumber: 1, Time: "2:30.000"},
			{Driver: "PER", DriverNumber: "11", LapNumber: 1, Time: "2:31.500"},
			{Driver: "PER", DriverNumber: "11", LapNumber: 2, Time: "4:10.000"},
		}
		laps, err := ShapeLaps(records, raceResults(), models.SessionRace)
		require.Nil(t, err)

		require.NotNil(t, laps[0].DeltaWinner)
		require.Equal(t, 0.0, *laps[0].DeltaWinner)
		require.NotNil(t, laps[1].DeltaWinner)
		require.Equal(t, 1.5, *laps[1].DeltaWinner)
		// the winner has no lap 2, so no delta there
		require.Nil(t, laps[2].DeltaWinner)
	})
}

func TestShapeLapTelemetry(t *testing.T) {
	t.Run(`distance integration check`, func(t *testing.T) {
		samples := []providerapimodels.TelemetrySample{
			{SessionTime: 10.0, Speed: 36},   // 10 m/s
			{SessionTime: 11.0, Speed: 72},   // 20 m/s
			{SessionTime: 11.5, Speed: 72},
		}
		shaped := ShapeLapTelemetry(samples, 0)
		require.Len(t, shaped, 3)
		require.Equal(t, 0.0, shaped[0].Distance)
		require.InDelta(t, 10.0, shaped[1].Distance, 1e-9)
		require.InDelta(t, 20.0, shaped[2].Distance, 1e-9)
	})

	t.Run(`unordered samples sorted by session time check`, func(t *testing.T) {
		samples := []providerapimodels.TelemetrySample{
			{SessionTime: 11.0, Speed: 72},
			{SessionTime: 10.0, Speed: 36},
		}
		shaped := ShapeLapTelemetry(samples, 0)
		require.Len(t, shaped, 2)
		require.Equal(t, 36.0, shaped[0].Speed)
		require.Equal(t, 0.0, shaped[0].Distance)
		require.InDelta(t, 10.0, shaped[1].Distance, 1e-9)
	})

	t.Run(`brake flag scaling check`, func(t *testing.T) {
		samples := []providerapimodels.TelemetrySample{
			{SessionTime: 1.0, Brake: true},
			{SessionTime: 2.0, Brake: false},
		}
		shaped := ShapeLapTelemetry(samples, 0)
		require.Equal(t, 100.0, shaped[0].Brake)
		require.Equal(t, 0.0, shaped[1].Brake)
	})

	t.Run(`downsample keeps every n-th check`, func(t *testing.T) {
		samples := make([]providerapimodels.TelemetrySample, 7)
		for idx := range samples {
			samples[idx] = providerapimodels.TelemetrySample{SessionTime: float64(idx), X: float64(idx)}
		}
		shaped := ShapeLapTelemetry(samples, 3)
		require.Len(t, shaped, 3)
		require.Equal(t, 0.0, shaped[0].X)
		require.Equal(t, 3.0, shaped[1].X)
		require.Equal(t, 6.0, shaped[2].X)
		for idx, sample := range shaped {
			require.Equal(t, idx, sample.Seq)
		}
	})

	t.Run(`empty input check`, func(t *testing.T) {
		require.Nil(t, ShapeLapTelemetry(nil, 2))
	})
}
