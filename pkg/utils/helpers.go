package utils

import (
	"math"
	"strings"
)

// ShortName extracts the short place name from a geocoder display name,
// taking the part before the first comma (e.g. "Bengaluru" from
// "Bengaluru, Bangalore North, Karnataka, India")
func ShortName(displayName string) string {
	if idx := strings.Index(displayName, ","); idx >= 0 {
		displayName = displayName[:idx]
	}
	return strings.TrimSpace(displayName)
}

// ValidCoordinates reports whether a lat/lon pair is within range
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Clamp limits a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
