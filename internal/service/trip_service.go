package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/metrics"
)

// TripService orchestrates one tourism query: resolve the place, classify
// intent, fan out to the weather/places lookups, compose the answer
type TripService struct {
	geocodingSvc *GeocodingService
	weatherSvc   *WeatherService
	placesSvc    *PlacesService
	logger       *zap.Logger
}

// NewTripService creates a new trip service
func NewTripService(
	geocodingSvc *GeocodingService,
	weatherSvc *WeatherService,
	placesSvc *PlacesService,
	logger *zap.Logger,
) *TripService {
	return &TripService{
		geocodingSvc: geocodingSvc,
		weatherSvc:   weatherSvc,
		placesSvc:    placesSvc,
		logger:       logger,
	}
}

// HandleQuery processes a free-text tourism query. It always returns a
// result with a textual response: resolution failures short-circuit to
// their fixed message, lookup failures degrade only their own section.
func (s *TripService) HandleQuery(ctx context.Context, query string) domain.QueryResult {
	started := time.Now()

	// Resolving is always first and blocking: no lookups before a place
	// or a terminal failure is known.
	place, err := s.geocodingSvc.Resolve(ctx, query)
	if err != nil {
		code := domain.ErrorCode(err)
		s.logger.Info("query ended at resolution",
			zap.String("code", code),
			zap.Error(err),
		)
		s.observe(started, code)
		return domain.QueryResult{
			Response:  TerminalMessage(err),
			ErrorCode: code,
		}
	}

	intents := ClassifyIntent(query)

	// Weather and places lookups are independent; run them concurrently
	// and join before composing.
	var (
		results LookupResults
		wg      sync.WaitGroup
	)

	if intents.Weather {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := s.weatherSvc.Current(ctx, place.Latitude, place.Longitude)
			if err != nil {
				s.logger.Warn("weather lookup failed", zap.String("place", place.Name), zap.Error(err))
				results.WeatherErr = err
				return
			}
			results.Weather = &report
		}()
	}

	if intents.Places {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attractions, err := s.placesSvc.Nearby(ctx, place.Latitude, place.Longitude)
			if err != nil {
				s.logger.Warn("places lookup failed", zap.String("place", place.Name), zap.Error(err))
				results.AttractionsErr = err
				return
			}
			results.Attractions = attractions
		}()
	}

	wg.Wait()

	outcome := "ok"
	if results.WeatherErr != nil || results.AttractionsErr != nil {
		outcome = "partial"
	}
	s.observe(started, outcome)

	s.logger.Info("query handled",
		zap.String("place", place.Name),
		zap.Bool("weather", intents.Weather),
		zap.Bool("places", intents.Places),
		zap.String("outcome", outcome),
	)

	return domain.QueryResult{
		Response:    ComposeResponse(place, intents, results),
		Place:       &place,
		Intents:     &intents,
		Weather:     results.Weather,
		Attractions: results.Attractions,
	}
}

func (s *TripService) observe(started time.Time, outcome string) {
	metrics.QueriesTotal.WithLabelValues(outcome).Inc()
	metrics.QueryDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
