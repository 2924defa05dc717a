package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/metrics"
	"github.com/Sreevaishnavi4/inkle-tourism/pkg/utils"
)

// GeocodingConfig holds the Nominatim provider settings
type GeocodingConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// GeocodingService resolves free-text place mentions to coordinates
type GeocodingService struct {
	cfg        GeocodingConfig
	httpClient *http.Client
	cache      domain.GeoCache
	logger     *zap.Logger
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(cfg GeocodingConfig, cache domain.GeoCache, logger *zap.Logger) *GeocodingService {
	return &GeocodingService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache:  cache,
		logger: logger,
	}
}

// nominatimResult represents one ranked entry of the Nominatim search
// response. Coordinates arrive as strings on the wire.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve extracts a place mention from the query text and geocodes it.
// Outcomes: a Place, domain.ErrNoMention (no candidate in the text),
// domain.ErrUnknownPlace (provider found nothing), or
// domain.ErrResolverUnavailable (provider unreachable or malformed).
func (s *GeocodingService) Resolve(ctx context.Context, text string) (domain.Place, error) {
	mention, ok := ExtractMention(text)
	if !ok {
		return domain.Place{}, domain.ErrNoMention
	}

	key := normalizeMention(mention)

	if entry := s.cacheGet(ctx, key); entry != nil {
		if !entry.Found {
			return domain.Place{}, domain.ErrUnknownPlace
		}
		place := entry.Place
		place.Mention = mention
		return place, nil
	}

	place, err := s.lookup(ctx, mention)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPlace) {
			// Confirmed unknowns are worth caching too: the provider is
			// rate-limited and users retry typos.
			s.cacheSet(ctx, key, domain.CachedPlace{Found: false})
		}
		return domain.Place{}, err
	}

	s.cacheSet(ctx, key, domain.CachedPlace{Found: true, Place: place})
	return place, nil
}

// lookup performs the Nominatim search call for a mention.
func (s *GeocodingService) lookup(ctx context.Context, mention string) (domain.Place, error) {
	endpoint := fmt.Sprintf(
		"%s/search?q=%s&format=json&limit=3",
		s.cfg.BaseURL, url.QueryEscape(mention),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Place{}, fmt.Errorf("%w: failed to create request: %v", domain.ErrResolverUnavailable, err)
	}
	// Nominatim's usage policy requires identifying the application
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.Place{}, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.Place{}, fmt.Errorf("%w: status %d", domain.ErrResolverUnavailable, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		metrics.ProviderRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.Place{}, fmt.Errorf("%w: failed to decode response: %v", domain.ErrResolverUnavailable, err)
	}
	metrics.ProviderRequests.WithLabelValues("nominatim", "ok").Inc()

	if len(results) == 0 {
		return domain.Place{}, domain.ErrUnknownPlace
	}

	// The provider's ranking is authoritative: first entry wins.
	best := results[0]
	lat, latErr := strconv.ParseFloat(best.Lat, 64)
	lon, lonErr := strconv.ParseFloat(best.Lon, 64)
	if latErr != nil || lonErr != nil || !utils.ValidCoordinates(lat, lon) {
		return domain.Place{}, fmt.Errorf("%w: invalid coordinates in response", domain.ErrResolverUnavailable)
	}

	return domain.Place{
		Mention:     mention,
		DisplayName: best.DisplayName,
		Name:        utils.ShortName(best.DisplayName),
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}

func (s *GeocodingService) cacheGet(ctx context.Context, key string) *domain.CachedPlace {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.GeocodeCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("geocode cache get failed", zap.String("mention", key), zap.Error(err))
		return nil
	}
	if entry == nil {
		metrics.GeocodeCacheLookups.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.GeocodeCacheLookups.WithLabelValues("hit").Inc()
	return entry
}

func (s *GeocodingService) cacheSet(ctx context.Context, key string, entry domain.CachedPlace) {
	if err := s.cache.Set(ctx, key, entry); err != nil {
		s.logger.Warn("geocode cache set failed", zap.String("mention", key), zap.Error(err))
	}
}

func normalizeMention(mention string) string {
	return strings.ToLower(strings.TrimSpace(mention))
}
