package telemetry

import (
	"testing"

	"f1viz-backend/models"
	dbmodels "f1viz-backend/models/db"

	"github.com/stretchr/testify/require"
)

func lapTime(ms int64) *int64 {
	return &ms
}

func TestTelemetryHelpers(t *testing.T) {
	t.Run(`fastestLapNumber check`, func(t *testing.T) {
		laps := []dbmodels.Lap{
			{LapNumber: 1, LapTimeMs: lapTime(91000)},
			{LapNumber: 2, LapTimeMs: lapTime(90200)},
			{LapNumber: 3}, // no recorded time
			{LapNumber: 4, LapTimeMs: lapTime(90900)},
		}
		require.Equal(t, 2, fastestLapNumber(laps))
	})

	t.Run(`fastestLapNumber no timed laps check`, func(t *testing.T) {
		require.Equal(t, 0, fastestLapNumber([]dbmodels.Lap{{LapNumber: 1}}))
		require.Equal(t, 0, fastestLapNumber(nil))
	})

	t.Run(`closestPointIndex check`, func(t *testing.T) {
		samples := []dbmodels.TelemetrySample{
			{Distance: 0},
			{Distance: 100},
			{Distance: 250},
		}
		require.Equal(t, 0, closestPointIndex(samples, -10))
		require.Equal(t, 1, closestPointIndex(samples, 130))
		require.Equal(t, 2, closestPointIndex(samples, 400))
	})

	t.Run(`paramValue check`, func(t *testing.T) {
		sample := dbmodels.TelemetrySample{Speed: 280, Throttle: 95, Brake: 100, Gear: 7}
		require.Equal(t, 280.0, paramValue(sample, models.ParamSpeed))
		require.Equal(t, 95.0, paramValue(sample, models.ParamThrottle))
		require.Equal(t, 100.0, paramValue(sample, models.ParamBrake))
		require.Equal(t, 7.0, paramValue(sample, models.ParamGear))
	})

	t.Run(`ParamFormats cover all parameters check`, func(t *testing.T) {
		params := []models.TelemetryParam{
			models.ParamSpeed,
			models.ParamThrottle,
			models.ParamBrake,
			models.ParamGear,
		}
		for _, param := range params {
			format, ok := ParamFormats[param]
			require.True(t, ok, string(param))
			require.NotEmpty(t, format.Title)
			require.Greater(t, format.CMax, format.CMin)
			require.Greater(t, format.YMax, format.YMin)
		}
	})
}
