package model

// WeatherSnapshot is a denormalized weather reading. Temperature is Celsius,
// wind speed km/h.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   int     `json:"windSpeed"`
	Location    string  `json:"location"`
}
