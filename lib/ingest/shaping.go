package ingest

import (
	"sort"
	"strings"

	"f1viz-backend/lib/utils/helpers"
	"f1viz-backend/models"
	providerapimodels "f1viz-backend/models/api/provider"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ShapeLaps turns the provider's raw lap table into the stored lap rows:
// formation laps dropped, final positions attached, delta-to-winner computed
// and the track status split into flags.
func ShapeLaps(records []providerapimodels.LapRecord, results []providerapimodels.DriverResult, session models.SessionKind) ([]dbmodels.Lap, error) {
	laps := make([]dbmodels.Lap, 0, len(records))
	for _, rec := range records {
		if rec.LapNumber < 1 {
			continue
		}
		sessionTime, err := helpers.ParseProviderTime(rec.Time)
		if err != nil {
			log.WithField("driver", rec.Driver).
				WithField("lap", rec.LapNumber).
				WithError(err).
				Warn("lap has no usable session time, skipping")
			continue
		}
		lap := dbmodels.Lap{
			Driver:        rec.Driver,
			DriverNumber:  rec.DriverNumber,
			LapNumber:     rec.LapNumber,
			SessionTimeMs: sessionTime.Milliseconds(),
			Stint:         rec.Stint,
			Compound:      rec.Compound,
		}
		if rec.LapTime != "" {
			if lapTime, err := helpers.ParseProviderTime(rec.LapTime); err == nil {
				ms := lapTime.Milliseconds()
				lap.LapTimeMs = &ms
			}
		}
		if rec.PitInTime != "" {
			if pitIn, err := helpers.ParseProviderTime(rec.PitInTime); err == nil {
				ms := pitIn.Milliseconds()
				lap.PitInTimeMs = &ms
				lap.PitStop = true
			}
		}
		lap.Yellow = strings.Contains(rec.TrackStatus, models.TrackStatusYellow)
		lap.Red = strings.Contains(rec.TrackStatus, models.TrackStatusRed)
		lap.Safety = strings.Contains(rec.TrackStatus, models.TrackStatusSafetyCar)
		lap.Virtual = strings.Contains(rec.TrackStatus, models.TrackStatusVirtualSC)
		lap.Nominal = !lap.Yellow && !lap.Red && !lap.Safety && !lap.Virtual
		laps = append(laps, lap)
	}

	var positions map[string]int
	if session == models.SessionSprint {
		positions = sprintPositions(laps)
	} else {
		positions = make(map[string]int, len(results))
		for _, res := range results {
			positions[res.DriverNumber] = res.Position
		}
	}
	if len(positions) == 0 {
		return nil, errors.New("no classification data for session")
	}
	for idx := range laps {
		laps[idx].Position = positions[laps[idx].DriverNumber]
	}

	applyDeltaToWinner(laps)
	return laps, nil
}

// sprintPositions derives the finishing order from the laps themselves: a
// driver's last lap, ordered by lap count descending then session time
// ascending. Sprint results are not always published by the provider.
func sprintPositions(laps []dbmodels.Lap) map[string]int {
	last := make(map[string]dbmodels.Lap)
	for _, lap := range laps {
		prev, ok := last[lap.DriverNumber]
		if !ok || lap.LapNumber > prev.LapNumber {
			last[lap.DriverNumber] = lap
		}
	}
	order := make([]dbmodels.Lap, 0, len(last))
	for _, lap := range last {
		order = append(order, lap)
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a].LapNumber != order[b].LapNumber {
			return order[a].LapNumber > order[b].LapNumber
		}
		return order[a].SessionTimeMs < order[b].SessionTimeMs
	})
	positions := make(map[string]int, len(order))
	for idx, lap := range order {
		positions[lap.DriverNumber] = idx + 1
	}
	return positions
}

func applyDeltaToWinner(laps []dbmodels.Lap) {
	winnerTimes := make(map[int]int64)
	for _, lap := range laps {
		if lap.Position == 1 {
			winnerTimes[lap.LapNumber] = lap.SessionTimeMs
		}
	}
	for idx := range laps {
		winnerTime, ok := winnerTimes[laps[idx].LapNumber]
		if !ok {
			continue
		}
		delta := float64(laps[idx].SessionTimeMs-winnerTime) / 1000
		laps[idx].DeltaWinner = &delta
	}
}

// ShapeLapTelemetry converts one lap's raw samples: brake flag scaled to a
// 0/100 percentage, distance integrated from speed over the sample
// timestamps (reset to zero at lap start) and an optional downsample factor
// that keeps every n-th sample.
func ShapeLapTelemetry(samples []providerapimodels.TelemetrySample, downsample int) []dbmodels.TelemetrySample {
	if len(samples) == 0 {
		return nil
	}
	ordered := make([]providerapimodels.TelemetrySample, len(samples))
	copy(ordered, samples)
	sort.Slice(ordered, func(a, b int) bool {
		return ordered[a].SessionTime < ordered[b].SessionTime
	})

	shaped := make([]dbmodels.TelemetrySample, 0, len(ordered))
	distance := 0.0
	for idx, sample := range ordered {
		if idx > 0 {
			dt := sample.SessionTime - ordered[idx-1].SessionTime
			if dt > 0 {
				// kph -> m/s over the preceding interval
				distance += ordered[idx-1].Speed / 3.6 * dt
			}
		}
		brake := 0.0
		if sample.Brake {
			brake = 100
		}
		shaped = append(shaped, dbmodels.TelemetrySample{
			X:        sample.X,
			Y:        sample.Y,
			Speed:    sample.Speed,
			Gear:     sample.Gear,
			Throttle: sample.Throttle,
			Brake:    brake,
			Distance: distance,
		})
	}

	if downsample > 1 {
		kept := make([]dbmodels.TelemetrySample, 0, len(shaped)/downsample+1)
		for idx := 0; idx < len(shaped); idx += downsample {
			kept = append(kept, shaped[idx])
		}
		shaped = kept
	}
	for idx := range shaped {
		shaped[idx].Seq = idx
	}
	return shaped
}

// driverLapNumbers collects each driver's lap numbers from the shaped laps,
// sorted ascending.
func driverLapNumbers(laps []dbmodels.Lap) map[string][]int {
	byDriver := make(map[string][]int)
	for _, lap := range laps {
		byDriver[lap.Driver] = append(byDriver[lap.Driver], lap.LapNumber)
	}
	for driver := range byDriver {
		sort.Ints(byDriver[driver])
	}
	return byDriver
}
