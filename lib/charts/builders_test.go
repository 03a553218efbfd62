package charts

import (
	"testing"

	dbmodels "f1viz-backend/models/db"

	"github.com/stretchr/testify/require"
)

func lapTime(sec float64) *int64 {
	ms := int64(sec * 1000)
	return &ms
}

func delta(sec float64) *float64 {
	return &sec
}

func TestBuildLapTimeHeatmap(t *testing.T) {
	laps := []dbmodels.Lap{
		{Driver: "VER", Position: 1, LapNumber: 1, LapTimeMs: lapTime(90)},
		{Driver: "VER", Position: 1, LapNumber: 2, LapTimeMs: lapTime(91), PitStop: true},
		{Driver: "PER", Position: 2, LapNumber: 1, LapTimeMs: lapTime(92)},
		// no lap 2 time for PER
		{Driver: "PER", Position: 2, LapNumber: 2},
	}

	t.Run(`driver rows ordered position descending check`, func(t *testing.T) {
		heatmap := BuildLapTimeHeatmap(laps)
		require.Equal(t, []string{"PER", "VER"}, heatmap.Drivers)
		require.Equal(t, []int{1, 2}, heatmap.Laps)
	})

	t.Run(`times matrix check`, func(t *testing.T) {
		heatmap := BuildLapTimeHeatmap(laps)
		require.NotNil(t, heatmap.Times[1][0])
		require.Equal(t, 90.0, *heatmap.Times[1][0])
		require.NotNil(t, heatmap.Times[0][0])
		require.Equal(t, 92.0, *heatmap.Times[0][0])
		require.Nil(t, heatmap.Times[0][1])
	})

	t.Run(`colorscale bounds check`, func(t *testing.T) {
		heatmap := BuildLapTimeHeatmap(laps)
		require.Equal(t, 90.0, heatmap.ZMin)
		require.InDelta(t, 99.0, heatmap.ZMax, 1e-9)
	})

	t.Run(`no timed laps leaves bounds unset check`, func(t *testing.T) {
		untimed := []dbmodels.Lap{
			{Driver: "VER", Position: 1, LapNumber: 1},
			{Driver: "PER", Position: 2, LapNumber: 1},
		}
		heatmap := BuildLapTimeHeatmap(untimed)
		require.Equal(t, 0.0, heatmap.ZMin)
		require.Equal(t, 0.0, heatmap.ZMax)
		require.Nil(t, heatmap.Times[0][0])
		require.Nil(t, heatmap.Times[1][0])
	})

	t.Run(`pit marks check`, func(t *testing.T) {
		heatmap := BuildLapTimeHeatmap(laps)
		require.Equal(t, "*", heatmap.PitMarks[1][1])
		require.Equal(t, "", heatmap.PitMarks[1][0])
		require.Equal(t, "", heatmap.PitMarks[0][0])
	})
}

func TestBuildDeltaChart(t *testing.T) {
	laps := []dbmodels.Lap{
		{Driver: "VER", Position: 1, LapNumber: 1, DeltaWinner: delta(0), Nominal: true},
		{Driver: "VER", Position: 1, LapNumber: 2, DeltaWinner: delta(0), Safety: true},
		{Driver: "VER", Position: 1, LapNumber: 3, DeltaWinner: delta(0), Yellow: true},
		{Driver: "PER", Position: 2, LapNumber: 1, DeltaWinner: delta(1.5)},
		{Driver: "PER", Position: 2, LapNumber: 2, DeltaWinner: delta(3.2), PitStop: true},
		{Driver: "HAM", Position: 3, LapNumber: 1, DeltaWinner: delta(2.0)},
	}
	colors := map[string]string{
		"VER": "rgba(30, 65, 255, 1)",
		"PER": "rgba(30, 65, 255, 1)", // teammate, same color
		"HAM": "rgba(108, 211, 191, 1)",
	}

	t.Run(`series ordered reverse alphabetical check`, func(t *testing.T) {
		chart := BuildDeltaChart(laps, colors)
		require.Len(t, chart.Series, 3)
		require.Equal(t, "VER", chart.Series[0].Driver)
		require.Equal(t, "PER", chart.Series[1].Driver)
		require.Equal(t, "HAM", chart.Series[2].Driver)
	})

	t.Run(`teammate dash check`, func(t *testing.T) {
		chart := BuildDeltaChart(laps, colors)
		require.False(t, chart.Series[0].Dash)
		require.True(t, chart.Series[1].Dash)
		require.False(t, chart.Series[2].Dash)
	})

	t.Run(`max delta check`, func(t *testing.T) {
		chart := BuildDeltaChart(laps, colors)
		require.Equal(t, 3.2, chart.MaxDelta)
	})

	t.Run(`status bands from winner laps check`, func(t *testing.T) {
		chart := BuildDeltaChart(laps, colors)
		bands := make(map[string][]int)
		for _, band := range chart.Bands {
			bands[band.Status] = band.Laps
		}
		require.Equal(t, []int{2}, bands["Safety"])
		require.Equal(t, []int{3}, bands["Yellow"])
		require.Empty(t, bands["Red"])
		require.Empty(t, bands["Virtual"])
	})

	t.Run(`pit stop points check`, func(t *testing.T) {
		chart := BuildDeltaChart(laps, colors)
		require.Len(t, chart.Series[1].PitStops, 1)
		require.Equal(t, 2, chart.Series[1].PitStops[0].Lap)
	})
}

func TestBuildTyreStrategy(t *testing.T) {
	laps := []dbmodels.Lap{
		{Driver: "VER", Position: 1, LapNumber: 1, Stint: 1, Compound: "SOFT"},
		{Driver: "VER", Position: 1, LapNumber: 2, Stint: 1, Compound: "SOFT"},
		{Driver: "VER", Position: 1, LapNumber: 3, Stint: 2, Compound: "HARD"},
		{Driver: "VER", Position: 1, LapNumber: 4, Stint: 2, Compound: "HARD"},
		{Driver: "PER", Position: 2, LapNumber: 1, Stint: 1, Compound: "MEDIUM"},
		{Driver: "PER", Position: 2, LapNumber: 2, Stint: 1, Compound: "MEDIUM"},
		{Driver: "PER", Position: 2, LapNumber: 3, Stint: 1, Compound: "MEDIUM"},
	}

	t.Run(`stint aggregation check`, func(t *testing.T) {
		strategy := BuildTyreStrategy(laps)
		require.Equal(t, 4, strategy.MaxLap)
		require.Len(t, strategy.Stints, 3)

		// position descending, then stint ascending
		require.Equal(t, "PER", strategy.Stints[0].Driver)
		require.Equal(t, "VER", strategy.Stints[1].Driver)
		require.Equal(t, 1, strategy.Stints[1].Stint)
		require.Equal(t, "VER", strategy.Stints[2].Driver)
		require.Equal(t, 2, strategy.Stints[2].Stint)
	})

	t.Run(`stint bounds and compound check`, func(t *testing.T) {
		strategy := BuildTyreStrategy(laps)
		per := strategy.Stints[0]
		require.Equal(t, "medium", per.Compound)
		require.Equal(t, 1, per.StartLap)
		require.Equal(t, 3, per.EndLap)
		require.Equal(t, 3, per.Length)

		verSecond := strategy.Stints[2]
		require.Equal(t, "hard", verSecond.Compound)
		require.Equal(t, 3, verSecond.StartLap)
		require.Equal(t, 4, verSecond.EndLap)
		require.Equal(t, 2, verSecond.Length)
	})
}
