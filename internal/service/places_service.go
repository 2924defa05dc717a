package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/metrics"
)

// PlacesConfig holds the Overpass provider settings
type PlacesConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RadiusMeters int
	Limit        int
}

// PlacesService retrieves nearby tourist attractions
type PlacesService struct {
	cfg        PlacesConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPlacesService creates a new places service
func NewPlacesService(cfg PlacesConfig, logger *zap.Logger) *PlacesService {
	if cfg.Limit <= 0 || cfg.Limit > domain.MaxAttractions {
		cfg.Limit = domain.MaxAttractions
	}
	return &PlacesService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// overpassResponse represents the Overpass interpreter response. Map
// data is noisy: elements may carry no tags or an empty name.
type overpassResponse struct {
	Elements []struct {
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Nearby fetches up to Limit named attractions around a coordinate pair,
// in provider order. An empty list is a valid result; only network,
// status, or payload problems surface as domain.ErrPlacesUnavailable.
func (s *PlacesService) Nearby(ctx context.Context, lat, lon float64) ([]domain.Attraction, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["tourism"="attraction"](around:%d,%f,%f);
  node["leisure"="park"](around:%d,%f,%f);
  node["historic"](around:%d,%f,%f);
);
out body;`,
		s.cfg.RadiusMeters, lat, lon,
		s.cfg.RadiusMeters, lat, lon,
		s.cfg.RadiusMeters, lat, lon,
	)

	endpoint := s.cfg.BaseURL + "/api/interpreter"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrPlacesUnavailable, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("overpass", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrPlacesUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("overpass", "error").Inc()
		return nil, fmt.Errorf("%w: status %d", domain.ErrPlacesUnavailable, resp.StatusCode)
	}

	var opResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&opResp); err != nil {
		metrics.ProviderRequests.WithLabelValues("overpass", "error").Inc()
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrPlacesUnavailable, err)
	}
	metrics.ProviderRequests.WithLabelValues("overpass", "ok").Inc()

	// Filter unnamed entries before truncating, dedupe keeping the first
	// occurrence, preserve provider order.
	attractions := make([]domain.Attraction, 0, s.cfg.Limit)
	seen := make(map[string]bool)
	for _, el := range opResp.Elements {
		name := strings.TrimSpace(el.Tags["name"])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		attractions = append(attractions, domain.Attraction{Name: name})
		if len(attractions) >= s.cfg.Limit {
			break
		}
	}

	return attractions, nil
}
