package ingestrefreshworker

import (
	"context"
	"time"

	"f1viz-backend/config"
	"f1viz-backend/lib/ingest"
	baseworker "f1viz-backend/lib/utils/base-worker"
	"f1viz-backend/models"
	ingestapimodels "f1viz-backend/models/api/ingest"
)

// Periodically re-ingests the configured event so the dashboard picks up
// provider-side corrections without a manual ingest call.

const (
	firstRunDelay = 1 * time.Minute
	runPeriod     = 12 * time.Hour
)

type impl struct {
	*baseworker.BaseImpl
	handler ingest.Provider
}

func StartWorker(ctx context.Context) {
	if !*config.Conf.Ingest.RefreshEnabled || config.Conf.Ingest.RefreshEvent == "" {
		return
	}
	i := impl{
		BaseImpl: baseworker.NewInstance("IngestRefresh", firstRunDelay, runPeriod),
		handler:  ingest.Instance,
	}
	go i.Run(ctx, i.job)
}

func (i impl) job(ctx context.Context) {
	sessions := []models.SessionKind{models.SessionRace, models.SessionQualifying}
	for _, session := range sessions {
		req := ingestapimodels.IngestRequest{
			Season:  config.Conf.Ingest.RefreshSeason,
			Event:   config.Conf.Ingest.RefreshEvent,
			Session: session,
		}
		if err := i.handler.Process(ctx, req); err != nil {
			i.GetLogger().WithError(err).
				WithField("session", session).
				Error("scheduled refresh failed")
		}
	}
}
