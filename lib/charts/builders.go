package charts

import (
	"sort"
	"strings"

	chartsapimodels "f1viz-backend/models/api/charts"
	dbmodels "f1viz-backend/models/db"
)

// colorscale cap relative to the fastest lap; keeps safety-car laps from
// drowning out the variation in racing laps
const slowestTimeFactor = 1.1

// BuildLapTimeHeatmap pivots the lap table into a driver x lap matrix of
// lap-time seconds. Drivers are ordered by final position descending so the
// winner renders as the top row.
func BuildLapTimeHeatmap(laps []dbmodels.Lap) chartsapimodels.LapTimeHeatmap {
	drivers := driversByPositionDesc(laps)
	maxLap := maxLapNumber(laps)

	rowIndex := make(map[string]int, len(drivers))
	for idx, driver := range drivers {
		rowIndex[driver] = idx
	}

	times := make([][]*float64, len(drivers))
	pitMarks := make([][]string, len(drivers))
	for idx := range drivers {
		times[idx] = make([]*float64, maxLap)
		pitMarks[idx] = make([]string, maxLap)
	}

	fastest := 0.0
	for _, lap := range laps {
		row, ok := rowIndex[lap.Driver]
		if !ok || lap.LapNumber < 1 || lap.LapNumber > maxLap {
			continue
		}
		col := lap.LapNumber - 1
		if sec := lap.LapTimeSec(); sec != nil {
			times[row][col] = sec
			if fastest == 0 || *sec < fastest {
				fastest = *sec
			}
		}
		if lap.PitStop {
			pitMarks[row][col] = "*"
		}
	}

	lapNumbers := make([]int, maxLap)
	for idx := range lapNumbers {
		lapNumbers[idx] = idx + 1
	}

	return chartsapimodels.LapTimeHeatmap{
		Drivers:  drivers,
		Laps:     lapNumbers,
		Times:    times,
		PitMarks: pitMarks,
		ZMin:     fastest,
		ZMax:     fastest * slowestTimeFactor,
	}
}

// BuildDeltaChart builds the per-driver delta-to-winner traces plus the
// track-status bands taken from the winner's non-nominal laps.
func BuildDeltaChart(laps []dbmodels.Lap, colors map[string]string) chartsapimodels.DeltaChart {
	maxDelta := 0.0
	for _, lap := range laps {
		if lap.DeltaWinner != nil && *lap.DeltaWinner > maxDelta {
			maxDelta = *lap.DeltaWinner
		}
	}

	chart := chartsapimodels.DeltaChart{
		MaxDelta: maxDelta,
		Bands:    statusBands(laps),
	}

	byDriver := make(map[string][]dbmodels.Lap)
	for _, lap := range laps {
		byDriver[lap.Driver] = append(byDriver[lap.Driver], lap)
	}
	drivers := make([]string, 0, len(byDriver))
	for driver := range byDriver {
		drivers = append(drivers, driver)
	}
	// reverse alphabetical, so the legend lists drivers A..Z when reversed
	sort.Sort(sort.Reverse(sort.StringSlice(drivers)))

	colorsUsed := make(map[string]bool)
	for _, driver := range drivers {
		driverLaps := byDriver[driver]
		sort.Slice(driverLaps, func(a, b int) bool {
			return driverLaps[a].LapNumber < driverLaps[b].LapNumber
		})
		trace := chartsapimodels.DriverDeltaTrace{
			Driver: driver,
			Color:  colors[driver],
		}
		if trace.Color != "" {
			// dashed line when the teammate already took the team color
			trace.Dash = colorsUsed[trace.Color]
			colorsUsed[trace.Color] = true
		}
		for _, lap := range driverLaps {
			point := chartsapimodels.DeltaPoint{
				Lap:   lap.LapNumber,
				Delta: lap.DeltaWinner,
			}
			trace.Points = append(trace.Points, point)
			if lap.PitStop {
				trace.PitStops = append(trace.PitStops, point)
			}
		}
		chart.Series = append(chart.Series, trace)
	}
	return chart
}

func statusBands(laps []dbmodels.Lap) []chartsapimodels.TrackStatusBand {
	type statusFlag struct {
		name string
		flag func(dbmodels.Lap) bool
	}
	flags := []statusFlag{
		{"Red", func(l dbmodels.Lap) bool { return l.Red }},
		{"Yellow", func(l dbmodels.Lap) bool { return l.Yellow }},
		{"Safety", func(l dbmodels.Lap) bool { return l.Safety }},
		{"Virtual", func(l dbmodels.Lap) bool { return l.Virtual }},
	}
	bands := make([]chartsapimodels.TrackStatusBand, 0, len(flags))
	for _, status := range flags {
		band := chartsapimodels.TrackStatusBand{Status: status.name, Laps: []int{}}
		for _, lap := range laps {
			// bands are tied to the winner's laps
			if lap.Position != 1 || lap.Nominal {
				continue
			}
			if status.flag(lap) {
				band.Laps = append(band.Laps, lap.LapNumber)
			}
		}
		sort.Ints(band.Laps)
		bands = append(bands, band)
	}
	return bands
}

// BuildTyreStrategy aggregates laps into stints ordered by final position
// descending, then stint number.
func BuildTyreStrategy(laps []dbmodels.Lap) chartsapimodels.TyreStrategy {
	type stintKey struct {
		driver string
		stint  int
	}
	positions := make(map[string]int)
	stints := make(map[stintKey]*chartsapimodels.Stint)
	for _, lap := range laps {
		positions[lap.Driver] = lap.Position
		key := stintKey{driver: lap.Driver, stint: lap.Stint}
		agg, ok := stints[key]
		if !ok {
			stints[key] = &chartsapimodels.Stint{
				Driver:   lap.Driver,
				Stint:    lap.Stint,
				Compound: strings.ToLower(lap.Compound),
				StartLap: lap.LapNumber,
				EndLap:   lap.LapNumber,
			}
			continue
		}
		if lap.LapNumber < agg.StartLap {
			agg.StartLap = lap.LapNumber
		}
		if lap.LapNumber > agg.EndLap {
			agg.EndLap = lap.LapNumber
		}
	}

	result := chartsapimodels.TyreStrategy{Stints: make([]chartsapimodels.Stint, 0, len(stints))}
	for _, agg := range stints {
		agg.Length = agg.EndLap - agg.StartLap + 1
		if agg.EndLap > result.MaxLap {
			result.MaxLap = agg.EndLap
		}
		result.Stints = append(result.Stints, *agg)
	}
	sort.Slice(result.Stints, func(a, b int) bool {
		posA := positions[result.Stints[a].Driver]
		posB := positions[result.Stints[b].Driver]
		if posA != posB {
			return posA > posB
		}
		return result.Stints[a].Stint < result.Stints[b].Stint
	})
	return result
}

func driversByPositionDesc(laps []dbmodels.Lap) []string {
	positions := make(map[string]int)
	for _, lap := range laps {
		positions[lap.Driver] = lap.Position
	}
	drivers := make([]string, 0, len(positions))
	for driver := range positions {
		drivers = append(drivers, driver)
	}
	sort.Slice(drivers, func(a, b int) bool {
		if positions[drivers[a]] != positions[drivers[b]] {
			return positions[drivers[a]] > positions[drivers[b]]
		}
		return drivers[a] < drivers[b]
	})
	return drivers
}

func maxLapNumber(laps []dbmodels.Lap) int {
	maxLap := 0
	for _, lap := range laps {
		if lap.LapNumber > maxLap {
			maxLap = lap.LapNumber
		}
	}
	return maxLap
}
