package weather

import "wardrobe-ai/internal/model"

const (
	DefaultBaseURL   = "https://api.weather.gov"
	DefaultUserAgent = "(WardrobeAI, wardrobe-ai-app)"

	// NWS asks clients to stay polite; one request per second is plenty for
	// a single-user app.
	requestsPerSecond = 1
	requestBurst      = 3

	cacheSize = 64
)

// cityCoords maps common city names to coordinates so city lookups do not
// need a geocoding API.
var cityCoords = map[string]struct{ Lat, Lon float64 }{
	"san francisco": {37.7749, -122.4194},
	"new york":      {40.7128, -74.0060},
	"los angeles":   {34.0522, -118.2437},
	"chicago":       {41.8781, -87.6298},
	"seattle":       {47.6062, -122.3321},
	"miami":         {25.7617, -80.1918},
	"boston":        {42.3601, -71.0589},
	"denver":        {39.7392, -104.9903},
	"austin":        {30.2672, -97.7431},
	"portland":      {45.5152, -122.6784},
}

// DefaultSnapshot is the fixed fallback used when the NWS API is unreachable.
func DefaultSnapshot(location string) model.WeatherSnapshot {
	if location == "" {
		location = "San Francisco"
	}
	return model.WeatherSnapshot{
		Temperature: 22,
		FeelsLike:   23,
		Condition:   "Sunny",
		Humidity:    45,
		WindSpeed:   12,
		Location:    location,
	}
}
