package timingclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"context"

	"f1viz-backend/config"
	"f1viz-backend/models"
	providerapimodels "f1viz-backend/models/api/provider"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// GetSchedule lists the season's events and the sessions each one ran.
	GetSchedule(ctx context.Context, season int) (*providerapimodels.ScheduleResponse, error)

	// GetResults returns the classified finishing order of a session.
	GetResults(ctx context.Context, season int, event string, session models.SessionKind) ([]providerapimodels.DriverResult, error)

	// GetLaps returns the per-driver lap table of a session.
	GetLaps(ctx context.Context, season int, event string, session models.SessionKind) ([]providerapimodels.LapRecord, error)

	// GetLapTelemetry returns the sensor samples of one driver's lap.
	GetLapTelemetry(ctx context.Context, season int, event string, session models.SessionKind, driver string, lap int) ([]providerapimodels.TelemetrySample, error)
}

var Instance Provider

const (
	schedulePath  string = "%s/v1/schedule/%v"
	resultsPath   string = "%s/v1/results/%v/%v/%v"
	lapsPath      string = "%s/v1/laps/%v/%v/%v"
	telemetryPath string = "%s/v1/telemetry/%v/%v/%v/%v/%v"
)

type impl struct {
	host       string
	httpClient *http.Client
}

func NewProvider() {
	Instance = NewInstance(config.Conf.Provider.Host, time.Duration(config.Conf.Provider.RequestTimeout)*time.Second)
}

func NewInstance(host string, timeout time.Duration) Provider {
	return &impl{
		host: host,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (i impl) GetSchedule(ctx context.Context, season int) (*providerapimodels.ScheduleResponse, error) {
	uri := fmt.Sprintf(schedulePath, i.host, season)
	resp := providerapimodels.ScheduleResponse{}
	if err := i.sendRequest(ctx, uri, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) GetResults(ctx context.Context, season int, event string, session models.SessionKind) ([]providerapimodels.DriverResult, error) {
	uri := fmt.Sprintf(resultsPath, i.host, season, url.PathEscape(event), session)
	resp := providerapimodels.ResultsResponse{}
	if err := i.sendRequest(ctx, uri, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (i impl) GetLaps(ctx context.Context, season int, event string, session models.SessionKind) ([]providerapimodels.LapRecord, error) {
	uri := fmt.Sprintf(lapsPath, i.host, season, url.PathEscape(event), session)
	resp := providerapimodels.LapsResponse{}
	if err := i.sendRequest(ctx, uri, &resp); err != nil {
		return nil, err
	}
	return resp.Laps, nil
}

func (i impl) GetLapTelemetry(ctx context.Context, season int, event string, session models.SessionKind, driver string, lap int) ([]providerapimodels.TelemetrySample, error) {
	uri := fmt.Sprintf(telemetryPath, i.host, season, url.PathEscape(event), session, driver, lap)
	resp := providerapimodels.TelemetryResponse{}
	if err := i.sendRequest(ctx, uri, &resp); err != nil {
		return nil, err
	}
	return resp.Samples, nil
}

func (i impl) sendRequest(ctx context.Context, uri string, response interface{}) error {
	logger := log.WithField("external_request", uri)

	r, err := http.NewRequestWithContext(ctx, "GET", uri, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build provider request")
	}
	r.Header.Add("Accept", "application/json")

	resp, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("provider request failed")
		return errors.Wrap(err, "provider request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("failed to read provider response")
		return errors.Wrap(err, "failed to read provider response")
	}

	if resp.StatusCode != http.StatusOK {
		errData := providerapimodels.ErrorResponse{}
		if jsonErr := json.Unmarshal(body, &errData); jsonErr == nil && errData.Error != "" {
			logger.WithField("response_code", resp.StatusCode).
				WithField("response_body", errData.Error).
				Warn("provider returned an error")
			return errors.Errorf("provider error: %s", errData.Error)
		}
		logger.WithField("response_code", resp.StatusCode).Warn("provider returned an error")
		return errors.Errorf("provider returned status %v", resp.StatusCode)
	}

	if err = json.Unmarshal(body, response); err != nil {
		logger.WithError(err).Error("failed to decode provider response")
		return errors.Wrap(err, "failed to decode provider response")
	}
	return nil
}
