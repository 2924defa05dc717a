package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
)

// Fixed messages for terminal resolution outcomes.
const (
	msgNoMention           = "I couldn't understand which place you want to visit."
	msgUnknownPlace        = "I don't know this place exists."
	msgResolverUnavailable = "I couldn't check that place right now, please try again."
)

// LookupResults carries whatever the weather/places lookups produced for
// one request. A nil report or a set error marks that lookup as failed;
// an empty attraction list with no error is a valid "nothing found".
type LookupResults struct {
	Weather        *domain.WeatherReport
	WeatherErr     error
	Attractions    []domain.Attraction
	AttractionsErr error
}

// TerminalMessage maps a resolution-stage error to its fixed user-facing
// text. Returns "" for errors outside the resolution stage.
func TerminalMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoMention):
		return msgNoMention
	case errors.Is(err, domain.ErrUnknownPlace):
		return msgUnknownPlace
	case errors.Is(err, domain.ErrResolverUnavailable):
		return msgResolverUnavailable
	}
	return ""
}

// ComposeResponse renders the final text for a resolved place. Each
// requested intent contributes one section: its data when the lookup
// succeeded, a short note when it failed. Sections are joined with
// " And " so partial failure still reads as one coherent answer.
func ComposeResponse(place domain.Place, intents domain.IntentSet, results LookupResults) string {
	var sections []string

	if intents.Weather {
		sections = append(sections, weatherSection(place, results))
	}
	if intents.Places {
		sections = append(sections, placesSection(place, results))
	}

	return strings.Join(sections, " And ")
}

func weatherSection(place domain.Place, results LookupResults) string {
	if results.WeatherErr != nil || results.Weather == nil {
		return fmt.Sprintf("Weather information for %s is temporarily unavailable.", place.Name)
	}
	return fmt.Sprintf(
		"In %s it's currently %s°C with a %d%% chance of rain.",
		place.Name,
		strconv.FormatFloat(results.Weather.TemperatureC, 'f', -1, 64),
		results.Weather.PrecipitationChance,
	)
}

func placesSection(place domain.Place, results LookupResults) string {
	if results.AttractionsErr != nil {
		return fmt.Sprintf("Tourist attraction information for %s is temporarily unavailable.", place.Name)
	}
	if len(results.Attractions) == 0 {
		return fmt.Sprintf("I couldn't find tourist attractions near %s.", place.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "In %s these are the places you can go:", place.Name)
	for i, a := range results.Attractions {
		fmt.Fprintf(&b, "\n%d. %s", i+1, a.Name)
	}
	return b.String()
}
