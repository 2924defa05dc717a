package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/metrics"
	"github.com/Sreevaishnavi4/inkle-tourism/pkg/utils"
)

// WeatherConfig holds the Open-Meteo provider settings
type WeatherConfig struct {
	BaseURL string
	Timeout time.Duration
}

// WeatherService handles current-conditions fetching
type WeatherService struct {
	cfg        WeatherConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg WeatherConfig, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// openMeteoResponse represents the Open-Meteo forecast API response.
// Pointer fields distinguish a missing value from zero.
type openMeteoResponse struct {
	Current struct {
		Temperature  *float64 `json:"temperature_2m"`
		PrecipChance *float64 `json:"precipitation_probability"`
	} `json:"current"`
}

// Current fetches current conditions for a coordinate pair. A single
// attempt, no retry; any network, status, or payload problem surfaces as
// domain.ErrWeatherUnavailable.
func (s *WeatherService) Current(ctx context.Context, lat, lon float64) (domain.WeatherReport, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,precipitation_probability",
		s.cfg.BaseURL, lat, lon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("%w: failed to create request: %v", domain.ErrWeatherUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("open-meteo", "error").Inc()
		return domain.WeatherReport{}, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("open-meteo", "error").Inc()
		return domain.WeatherReport{}, fmt.Errorf("%w: status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var omResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		metrics.ProviderRequests.WithLabelValues("open-meteo", "error").Inc()
		return domain.WeatherReport{}, fmt.Errorf("%w: failed to decode response: %v", domain.ErrWeatherUnavailable, err)
	}

	if omResp.Current.Temperature == nil || omResp.Current.PrecipChance == nil {
		metrics.ProviderRequests.WithLabelValues("open-meteo", "error").Inc()
		return domain.WeatherReport{}, fmt.Errorf("%w: missing fields in response", domain.ErrWeatherUnavailable)
	}
	metrics.ProviderRequests.WithLabelValues("open-meteo", "ok").Inc()

	return domain.WeatherReport{
		TemperatureC:        utils.RoundTo(*omResp.Current.Temperature, 1),
		PrecipitationChance: int(utils.Clamp(math.Round(*omResp.Current.PrecipChance), 0, 100)),
	}, nil
}
