package domain

import "errors"

// Resolution-stage outcomes. Mutually exclusive per request; all three
// short-circuit the request to a fixed user-facing message.
var (
	ErrNoMention           = errors.New("NO_MENTION_FOUND")
	ErrUnknownPlace        = errors.New("UNKNOWN_PLACE")
	ErrResolverUnavailable = errors.New("RESOLVER_UNAVAILABLE")
)

// Lookup-stage failures. Independent of each other; each degrades only
// its own section of the response.
var (
	ErrWeatherUnavailable = errors.New("WEATHER_UNAVAILABLE")
	ErrPlacesUnavailable  = errors.New("PLACES_UNAVAILABLE")
)

// ErrorCode maps a taxonomy error to its stable API code.
// Returns "" for nil and "INTERNAL" for anything outside the taxonomy.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoMention):
		return "NO_MENTION_FOUND"
	case errors.Is(err, ErrUnknownPlace):
		return "UNKNOWN_PLACE"
	case errors.Is(err, ErrResolverUnavailable):
		return "RESOLVER_UNAVAILABLE"
	case errors.Is(err, ErrWeatherUnavailable):
		return "WEATHER_UNAVAILABLE"
	case errors.Is(err, ErrPlacesUnavailable):
		return "PLACES_UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}
