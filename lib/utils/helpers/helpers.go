package helpers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// ParseProviderTime parses the provider's "[h:]m:ss.fff" durations
// (lap times, session times, pit-in times).
func ParseProviderTime(timeStr string) (time.Duration, error) {
	if timeStr == "" {
		return 0, errors.New("empty time value")
	}
	parts := strings.Split(timeStr, ":")
	if len(parts) > 3 {
		return 0, errors.Errorf("unexpected time format %q", timeStr)
	}
	var hours, minutes int64
	var err error
	secPart := parts[len(parts)-1]
	if len(parts) >= 2 {
		minutes, err = strconv.ParseInt(parts[len(parts)-2], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "unexpected time format %q", timeStr)
		}
	}
	if len(parts) == 3 {
		hours, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "unexpected time format %q", timeStr)
		}
	}
	seconds, err := strconv.ParseFloat(secPart, 64)
	if err != nil || seconds < 0 {
		return 0, errors.Errorf("unexpected time format %q", timeStr)
	}
	if minutes < 0 || hours < 0 || minutes > 59 || seconds >= 60 {
		return 0, errors.Errorf("unexpected time format %q", timeStr)
	}
	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
	return d, nil
}

// FormatLapTime renders milliseconds as "m:ss.fff" for exports.
func FormatLapTime(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	minutes := int64(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	return fmt.Sprintf("%d:%06.3f", minutes, d.Seconds())
}

// EventKey normalizes a grand prix name for object storage paths.
func EventKey(event string) string {
	return strings.ReplaceAll(strings.TrimSpace(event), " ", "_")
}
