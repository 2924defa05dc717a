package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
)

func newPlacesService(baseURL string) *PlacesService {
	return NewPlacesService(PlacesConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		RadiusMeters: 8000,
		Limit:        domain.MaxAttractions,
	}, zap.NewNop())
}

func overpassBody(names ...string) string {
	body := `{"elements": [`
	for i, n := range names {
		if i > 0 {
			body += ","
		}
		if n == "" {
			body += `{"tags": {}}`
		} else {
			body += `{"tags": {"name": "` + n + `"}}`
		}
	}
	return body + `]}`
}

func TestPlacesService_Nearby(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `node["tourism"="attraction"](around:8000`)
		w.Write([]byte(overpassBody("Cubbon Park", "Lalbagh Botanical Garden")))
	}))
	defer ts.Close()

	attractions, err := newPlacesService(ts.URL).Nearby(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	require.Len(t, attractions, 2)
	assert.Equal(t, "Cubbon Park", attractions[0].Name)
	assert.Equal(t, "Lalbagh Botanical Garden", attractions[1].Name)
}

func TestPlacesService_Nearby_FiltersDedupesAndTruncates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(overpassBody(
			"", "A", "B", "A", "", "C", "D", "E", "F", "G",
		)))
	}))
	defer ts.Close()

	attractions, err := newPlacesService(ts.URL).Nearby(context.Background(), 12.97, 77.59)
	require.NoError(t, err)

	// Unnamed entries filtered before truncation, dupes dropped, provider
	// order preserved, at most 5 returned.
	require.Len(t, attractions, domain.MaxAttractions)
	names := make([]string, 0, len(attractions))
	for _, a := range attractions {
		assert.NotEmpty(t, a.Name)
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names)
}

func TestPlacesService_Nearby_EmptyIsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements": []}`))
	}))
	defer ts.Close()

	attractions, err := newPlacesService(ts.URL).Nearby(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Empty(t, attractions)
}

func TestPlacesService_Nearby_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>gateway timeout</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			_, err := newPlacesService(ts.URL).Nearby(context.Background(), 12.97, 77.59)
			assert.ErrorIs(t, err, domain.ErrPlacesUnavailable)
		})
	}
}
