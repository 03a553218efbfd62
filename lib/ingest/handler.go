package ingest

import (
	"context"
	"fmt"
	"sort"

	"f1viz-backend/config"
	"f1viz-backend/db"
	"f1viz-backend/lib/archive"
	catalogstore "f1viz-backend/lib/catalog/store"
	eventstore "f1viz-backend/lib/events/store"
	ingestjobstore "f1viz-backend/lib/ingest/store"
	lapstore "f1viz-backend/lib/laps/store"
	timingclient "f1viz-backend/lib/provider/client"
	"f1viz-backend/lib/smtp"
	telemetrystore "f1viz-backend/lib/telemetry/store"
	"f1viz-backend/lib/utils/helpers"
	initchecker "f1viz-backend/lib/utils/init-checker"
	"f1viz-backend/models"
	ingestapimodels "f1viz-backend/models/api/ingest"
	providerapimodels "f1viz-backend/models/api/provider"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Enqueue creates an ingest job and processes it in the background.
	Enqueue(req ingestapimodels.IngestRequest) (jobID string, err error)
	// Process runs an ingest job synchronously (used by the refresh worker).
	Process(ctx context.Context, req ingestapimodels.IngestRequest) error
	GetJob(id string) (*ingestapimodels.IngestJobView, error)
}

var Instance Provider

func NewHandler(ctx context.Context) {
	instance := &impl{
		appCtx:    ctx,
		client:    timingclient.Instance,
		events:    eventstore.NewInstance(db.DB),
		laps:      lapstore.NewInstance(db.DB),
		telemetry: telemetrystore.NewInstance(db.DB),
		catalog:   catalogstore.NewInstance(db.DB),
		jobs:      ingestjobstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"client", instance.client,
		"events", instance.events,
		"laps", instance.laps,
		"telemetry", instance.telemetry,
		"catalog", instance.catalog,
		"jobs", instance.jobs,
	)
	Instance = instance
}

type impl struct {
	appCtx    context.Context
	client    timingclient.Provider
	events    eventstore.Provider
	laps      lapstore.Provider
	telemetry telemetrystore.Provider
	catalog   catalogstore.Provider
	jobs      ingestjobstore.Provider
}

func (i impl) getLogger(req ingestapimodels.IngestRequest) *log.Entry {
	return log.
		WithField("season", req.Season).
		WithField("event", req.Event).
		WithField("session", req.Session)
}

func (i impl) Enqueue(req ingestapimodels.IngestRequest) (string, error) {
	jobID, err := i.jobs.Create(dbmodels.IngestJob{
		Season:  req.Season,
		Event:   req.Event,
		Session: req.Session,
	})
	if err != nil {
		return "", err
	}
	go i.runJob(i.appCtx, jobID, req)
	return jobID, nil
}

func (i impl) Process(ctx context.Context, req ingestapimodels.IngestRequest) error {
	jobID, err := i.jobs.Create(dbmodels.IngestJob{
		Season:  req.Season,
		Event:   req.Event,
		Session: req.Session,
	})
	if err != nil {
		return err
	}
	return i.runJob(ctx, jobID, req)
}

func (i impl) GetJob(id string) (*ingestapimodels.IngestJobView, error) {
	rec, err := i.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := ingestapimodels.IngestJobView{
		ID:          rec.ID,
		Season:      rec.Season,
		Event:       rec.Event,
		Session:     rec.Session,
		Status:      rec.Status,
		Message:     rec.Message,
		LapCount:    rec.LapCount,
		SampleCount: rec.SampleCount,
	}
	return &view, nil
}

func (i impl) runJob(ctx context.Context, jobID string, req ingestapimodels.IngestRequest) error {
	logger := i.getLogger(req).WithField("job_id", jobID)
	if err := i.jobs.SetRunning(jobID); err != nil {
		logger.WithError(err).Error("failed to mark ingest job as running")
		return err
	}
	lapCount, sampleCount, err := i.ingestSession(ctx, req, logger)
	if err != nil {
		logger.WithError(err).Error("ingest failed")
		if storeErr := i.jobs.SetFailed(jobID, err.Error()); storeErr != nil {
			logger.WithError(storeErr).Error("failed to mark ingest job as failed")
		}
		i.sendReport(req, fmt.Sprintf("ingest failed: %v", err))
		return err
	}
	if err = i.jobs.SetDone(jobID, lapCount, sampleCount); err != nil {
		logger.WithError(err).Error("failed to mark ingest job as done")
	}
	logger.WithField("lap_count", lapCount).
		WithField("sample_count", sampleCount).
		Info("ingest finished")
	i.sendReport(req, fmt.Sprintf("ingest finished: %v laps, %v telemetry samples", lapCount, sampleCount))
	return nil
}

func (i impl) ingestSession(ctx context.Context, req ingestapimodels.IngestRequest, logger *log.Entry) (lapCount, sampleCount int, err error) {
	records, err := i.client.GetLaps(ctx, req.Season, req.Event, req.Session)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to fetch laps")
	}
	i.archiveRaw(ctx, req, "laps", records)

	results, err := i.fetchResults(ctx, req)
	if err != nil {
		return 0, 0, err
	}

	laps, err := ShapeLaps(records, results, req.Session)
	if err != nil {
		return 0, 0, err
	}

	round := i.lookupRound(ctx, req, logger)
	event, err := i.events.UpsertEvent(req.Season, req.Event, round)
	if err != nil {
		return 0, 0, err
	}
	session, err := i.events.UpsertSession(event.ID, req.Session)
	if err != nil {
		return 0, 0, err
	}

	for idx := range laps {
		laps[idx].SessionID = session.ID
	}
	if err = i.laps.ReplaceSessionLaps(session.ID, laps); err != nil {
		return 0, 0, err
	}

	sampleCount, err = i.ingestTelemetry(ctx, req, session.ID, laps, logger)
	if err != nil {
		return 0, 0, err
	}
	return len(laps), sampleCount, nil
}

func (i impl) fetchResults(ctx context.Context, req ingestapimodels.IngestRequest) ([]providerapimodels.DriverResult, error) {
	// sprint classification is derived from the laps themselves
	if req.Session == models.SessionSprint {
		return nil, nil
	}
	results, err := i.client.GetResults(ctx, req.Season, req.Event, req.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch session results")
	}
	i.archiveRaw(ctx, req, "results", results)
	return results, nil
}

// lookupRound resolves the event's round number from the season schedule;
// ingest proceeds without it when the schedule is unavailable.
func (i impl) lookupRound(ctx context.Context, req ingestapimodels.IngestRequest, logger *log.Entry) int {
	schedule, err := i.client.GetSchedule(ctx, req.Season)
	if err != nil {
		logger.WithError(err).Warn("failed to fetch season schedule, round number left unset")
		return 0
	}
	for _, event := range schedule.Events {
		if event.Name == req.Event {
			return event.Round
		}
	}
	logger.Warn("event not found in season schedule, round number left unset")
	return 0
}

func (i impl) ingestTelemetry(ctx context.Context, req ingestapimodels.IngestRequest, sessionID string, laps []dbmodels.Lap, logger *log.Entry) (int, error) {
	downsample := req.Downsample
	if downsample < 1 {
		downsample = config.Conf.Ingest.Downsample
	}

	if err := i.telemetry.DeleteBySession(sessionID); err != nil {
		return 0, err
	}

	sampleCount := 0
	byDriver := driverLapNumbers(laps)
	drivers := make([]string, 0, len(byDriver))
	for driver := range byDriver {
		drivers = append(drivers, driver)
	}
	sort.Strings(drivers)

	for _, driver := range drivers {
		if helpers.IsContextDone(ctx) {
			return 0, errors.New("ingest cancelled")
		}
		logger.WithField("driver", driver).Info("retrieving telemetry data")
		storedLaps := make([]int64, 0, len(byDriver[driver]))
		for _, lapNumber := range byDriver[driver] {
			samples, err := i.client.GetLapTelemetry(ctx, req.Season, req.Event, req.Session, driver, lapNumber)
			if err != nil {
				// matches the provider's flaky per-lap endpoint: skip and continue
				logger.WithField("driver", driver).
					WithField("lap", lapNumber).
					WithError(err).
					Warn("error accessing telemetry, skipping lap")
				continue
			}
			shaped := ShapeLapTelemetry(samples, downsample)
			if len(shaped) == 0 {
				continue
			}
			for idx := range shaped {
				shaped[idx].SessionID = sessionID
				shaped[idx].Driver = driver
				shaped[idx].LapNumber = lapNumber
			}
			if err = i.telemetry.InsertBatch(shaped); err != nil {
				return 0, err
			}
			sampleCount += len(shaped)
			storedLaps = append(storedLaps, int64(lapNumber))
		}
		if len(storedLaps) == 0 {
			continue
		}
		err := i.catalog.Upsert(dbmodels.CatalogEntry{
			Season:  req.Season,
			Event:   req.Event,
			Session: req.Session,
			Driver:  driver,
			Laps:    storedLaps,
		})
		if err != nil {
			return 0, err
		}
	}
	return sampleCount, nil
}

func (i impl) archiveRaw(ctx context.Context, req ingestapimodels.IngestRequest, name string, payload interface{}) {
	if archive.Instance == nil {
		return
	}
	err := archive.Instance.PutRaw(ctx, req.Season, req.Event, req.Session, name, payload)
	if err != nil {
		i.getLogger(req).WithError(err).Warn("failed to archive raw payload")
	}
}

func (i impl) sendReport(req ingestapimodels.IngestRequest, message string) {
	to := config.Conf.Ingest.ReportEmail
	if to == "" || smtp.Instance == nil {
		return
	}
	subject := fmt.Sprintf("%v %s %s", req.Season, req.Event, req.Session)
	if err := smtp.Instance.SendEMail(to, message, subject); err != nil {
		i.getLogger(req).WithError(err).Error("failed to send ingest report")
	}
}
