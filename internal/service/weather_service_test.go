package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
)

func newWeatherService(baseURL string) *WeatherService {
	return NewWeatherService(WeatherConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestWeatherService_Current(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,precipitation_probability", r.URL.Query().Get("current"))
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.NotEmpty(t, r.URL.Query().Get("longitude"))
		w.Write([]byte(`{"current": {"temperature_2m": 26.5, "precipitation_probability": 40}}`))
	}))
	defer ts.Close()

	report, err := newWeatherService(ts.URL).Current(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Equal(t, 26.5, report.TemperatureC)
	assert.Equal(t, 40, report.PrecipitationChance)
}

func TestWeatherService_Current_ClampsPrecipitation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {"temperature_2m": 10.0, "precipitation_probability": 150}}`))
	}))
	defer ts.Close()

	report, err := newWeatherService(ts.URL).Current(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, report.PrecipitationChance)
}

func TestWeatherService_Current_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "missing temperature",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current": {"precipitation_probability": 40}}`))
			},
		},
		{
			name: "missing precipitation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current": {"temperature_2m": 26.5}}`))
			},
		},
		{
			name: "no current block",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			_, err := newWeatherService(ts.URL).Current(context.Background(), 12.97, 77.59)
			assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
		})
	}
}

func TestWeatherService_Current_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	_, err := newWeatherService(ts.URL).Current(context.Background(), 12.97, 77.59)
	assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
}
