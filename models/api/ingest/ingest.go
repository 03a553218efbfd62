package ingestapimodels

import (
	"f1viz-backend/models"

	"github.com/pkg/errors"
)

type IngestRequest struct {
	Season     int                `json:"season"`
	Event      string             `json:"event"`
	Session    models.SessionKind `json:"session"`
	Downsample int                `json:"downsample,omitempty"` // keep every n-th telemetry sample
}

func (r IngestRequest) Validate() error {
	if r.Season < 1950 {
		return errors.New("season is required")
	}
	if r.Event == "" {
		return errors.New("event is required")
	}
	if !r.Session.IsValid() {
		return errors.New("unknown session")
	}
	if r.Downsample < 0 {
		return errors.New("downsample must not be negative")
	}
	return nil
}

type IngestJobView struct {
	ID          string              `json:"id"`
	Season      int                 `json:"season"`
	Event       string              `json:"event"`
	Session     models.SessionKind  `json:"session"`
	Status      models.IngestStatus `json:"status"`
	Message     string              `json:"message,omitempty"`
	LapCount    int                 `json:"lap_count"`
	SampleCount int                 `json:"sample_count"`
}
