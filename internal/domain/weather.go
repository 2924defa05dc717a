package domain

// WeatherReport represents current conditions at a resolved location
type WeatherReport struct {
	TemperatureC float64 `json:"temperature_c"`
	// PrecipitationChance is a percentage in [0, 100]
	PrecipitationChance int `json:"precipitation_chance"`
}
