package service

import (
	"strings"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
)

var weatherCues = []string{"weather", "temperature", "rain", "climate", "hot", "cold"}

var placesCues = []string{"places", "attractions", "visit", "see", "plan my trip", "things to do"}

// ClassifyIntent detects which kinds of information the query asks for.
// Only weather cues -> weather only; only places cues -> places only.
// Both or neither -> both, so an ambiguous trip-planning query still gets
// a full answer instead of a clarification round-trip.
func ClassifyIntent(text string) domain.IntentSet {
	lower := strings.ToLower(text)
	weather := containsAny(lower, weatherCues)
	places := containsAny(lower, placesCues)
	if weather == places {
		return domain.IntentSet{Weather: true, Places: true}
	}
	return domain.IntentSet{Weather: weather, Places: places}
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}
