package domain

// Place is a location resolved through the geocoding provider
type Place struct {
	// Mention is the substring of the user query that named the place
	Mention string `json:"mention"`
	// DisplayName is the provider's full canonical name
	DisplayName string `json:"display_name"`
	// Name is the short form shown to the user (display name up to the first comma)
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CachedPlace is a geocode cache entry keyed by normalized mention.
// Found=false records a confirmed "place does not exist" answer so
// repeated queries for it skip the provider entirely.
type CachedPlace struct {
	Found bool  `json:"found"`
	Place Place `json:"place"`
}
