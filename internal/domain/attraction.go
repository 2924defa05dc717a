package domain

// MaxAttractions caps how many points of interest a response may list
const MaxAttractions = 5

// Attraction is a named point of interest near a resolved location
type Attraction struct {
	Name string `json:"name"`
}
