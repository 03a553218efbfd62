package timingclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"f1viz-backend/models"

	"github.com/stretchr/testify/require"
)

func TestTimingClient(t *testing.T) {
	t.Run(`GetSchedule check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/schedule/2023", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"season":2023,"events":[{"round":1,"name":"Bahrain Grand Prix","sessions":["Race","Qualifying"]}]}`))
		}))
		defer server.Close()

		client := NewInstance(server.URL, time.Second)
		schedule, err := client.GetSchedule(context.Background(), 2023)
		require.Nil(t, err)
		require.Equal(t, 2023, schedule.Season)
		require.Len(t, schedule.Events, 1)
		require.Equal(t, 1, schedule.Events[0].Round)
		require.Equal(t, "Bahrain Grand Prix", schedule.Events[0].Name)
	})

	t.Run(`GetLaps escapes event name check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/laps/2023/Monaco Grand Prix/Race", r.URL.Path)
			w.Write([]byte(`{"laps":[{"driver":"VER","driver_number":"1","lap_number":1,"time":"2:30.000"}]}`))
		}))
		defer server.Close()

		client := NewInstance(server.URL, time.Second)
		laps, err := client.GetLaps(context.Background(), 2023, "Monaco Grand Prix", models.SessionRace)
		require.Nil(t, err)
		require.Len(t, laps, 1)
		require.Equal(t, "VER", laps[0].Driver)
		require.Equal(t, "2:30.000", laps[0].Time)
	})

	t.Run(`GetResults check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/results/2023/Monza/Race", r.URL.Path)
			w.Write([]byte(`{"results":[{"driver":"VER","driver_number":"1","position":1}]}`))
		}))
		defer server.Close()

		client := NewInstance(server.URL, time.Second)
		results, err := client.GetResults(context.Background(), 2023, "Monza", models.SessionRace)
		require.Nil(t, err)
		require.Len(t, results, 1)
		require.Equal(t, 1, results[0].Position)
	})

	t.Run(`GetLapTelemetry check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/telemetry/2023/Monza/Race/VER/12", r.URL.Path)
			w.Write([]byte(`{"samples":[{"t":10.5,"x":1,"y":2,"speed":280,"gear":7,"throttle":100,"brake":false}]}`))
		}))
		defer server.Close()

		client := NewInstance(server.URL, time.Second)
		samples, err := client.GetLapTelemetry(context.Background(), 2023, "Monza", models.SessionRace, "VER", 12)
		require.Nil(t, err)
		require.Len(t, samples, 1)
		require.Equal(t, 10.5, samples[0].SessionTime)
		require.Equal(t, 280.0, samples[0].Speed)
		require.False(t, samples[0].Brake)
	})

	t.Run(`provider error payload check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"session not found"}`))
		}))
		defer server.Close()

		client := NewInstance(server.URL, time.Second)
		_, err := client.GetLaps(context.Background(), 2023, "Nowhere", models.SessionRace)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "session not found")
	})

	t.Run(`provider error without payload check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewInstance(server.URL, time.Second)
		_, err := client.GetSchedule(context.Background(), 2023)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "500")
	})
}
