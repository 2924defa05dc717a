package domain

import "context"

// GeoCache defines the interface for caching geocoding results.
// This follows the Dependency Inversion Principle - domain defines the interface
type GeoCache interface {
	// Get returns the cached entry for a normalized mention, or (nil, nil) on a miss
	Get(ctx context.Context, mention string) (*CachedPlace, error)

	// Set stores a resolution result (found or confirmed unknown) for a normalized mention
	Set(ctx context.Context, mention string, entry CachedPlace) error

	// Health checks cache connectivity
	Health(ctx context.Context) error
}

// QueryResult is the composed answer for one tourism query. Response is
// always set; the structured fields carry whatever stages succeeded.
type QueryResult struct {
	Response    string         `json:"response"`
	Place       *Place         `json:"place,omitempty"`
	Intents     *IntentSet     `json:"intents,omitempty"`
	Weather     *WeatherReport `json:"weather,omitempty"`
	Attractions []Attraction   `json:"attractions,omitempty"`
	ErrorCode   string         `json:"error_code,omitempty"`
}
