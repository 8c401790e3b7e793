package weather

import (
	"net/http"
	"time"
)

// Config controls the NWS client construction.
type Config struct {
	BaseURL    string
	UserAgent  string
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// --- NWS API response shapes (only the fields we read) ---

type pointsResponse struct {
	Properties struct {
		Forecast            string `json:"forecast"`
		ObservationStations string `json:"observationStations"`
		RelativeLocation    struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			Temperature   float64 `json:"temperature"`
			WindSpeed     string  `json:"windSpeed"`
			ShortForecast string  `json:"shortForecast"`
		} `json:"periods"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties struct {
			StationIdentifier string `json:"stationIdentifier"`
		} `json:"properties"`
	} `json:"features"`
}

type observationResponse struct {
	Properties struct {
		RelativeHumidity struct {
			Value *float64 `json:"value"`
		} `json:"relativeHumidity"`
	} `json:"properties"`
}
