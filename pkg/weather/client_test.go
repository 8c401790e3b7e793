package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-ai/internal/model"
)

// nwsHandler fakes the three-endpoint NWS flow against one test server.
func nwsHandler(baseURL *string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/points/40.7128,-74.0060":
			fmt.Fprintf(w, `{"properties":{
				"forecast":"%s/forecast",
				"observationStations":"%s/stations",
				"relativeLocation":{"properties":{"city":"New York","state":"NY"}}
			}}`, *baseURL, *baseURL)
		case r.URL.Path == "/forecast":
			fmt.Fprint(w, `{"properties":{"periods":[
				{"temperature":68,"temperatureUnit":"F","windSpeed":"10 mph","shortForecast":"Partly Cloudy"}
			]}}`)
		case r.URL.Path == "/stations":
			fmt.Fprint(w, `{"features":[{"properties":{"stationIdentifier":"KNYC"}}]}`)
		case r.URL.Path == "/stations/KNYC/observations/latest":
			fmt.Fprint(w, `{"properties":{"relativeHumidity":{"value":62.4}}}`)
		default:
			http.NotFound(w, r)
		}
	}
}

func TestGetByCoordinates(t *testing.T) {
	ctx := context.Background()

	t.Run("Full Flow With Conversions", func(t *testing.T) {
		var baseURL string
		server := httptest.NewServer(nwsHandler(&baseURL))
		defer server.Close()
		baseURL = server.URL

		client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})

		snapshot, err := client.GetByCoordinates(ctx, 40.7128, -74.0060)
		require.NoError(t, err)

		// 68F -> 20C, 10 mph -> 16 km/h
		assert.Equal(t, float64(20), snapshot.Temperature)
		assert.Equal(t, 16, snapshot.WindSpeed)
		assert.Equal(t, "Partly Cloudy", snapshot.Condition)
		assert.Equal(t, 62, snapshot.Humidity)
		assert.Equal(t, "New York, NY", snapshot.Location)
	})

	t.Run("Second Lookup Served From Cache", func(t *testing.T) {
		var baseURL string
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/points/40.7128,-74.0060" {
				calls++
			}
			nwsHandler(&baseURL)(w, r)
		}))
		defer server.Close()
		baseURL = server.URL

		client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})

		_, err := client.GetByCoordinates(ctx, 40.7128, -74.0060)
		require.NoError(t, err)
		_, err = client.GetByCoordinates(ctx, 40.7128, -74.0060)
		require.NoError(t, err)
		assert.Equal(t, 1, calls, "cached result must not refetch")
	})

	t.Run("Upstream Failure Falls Back To Default", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})

		snapshot, err := client.GetByCoordinates(ctx, 1.0, 2.0)
		require.Error(t, err, "degradation must be reported")
		assert.Equal(t, DefaultSnapshot(""), snapshot, "snapshot must still be usable")
	})
}

func TestGetByCity(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown City Falls Back", func(t *testing.T) {
		client := NewClient(Config{})
		snapshot, err := client.GetByCity(ctx, "Atlantis")
		require.Error(t, err)
		assert.Equal(t, "Atlantis", snapshot.Location)
		assert.Equal(t, float64(22), snapshot.Temperature)
	})
}

func TestParseWindMph(t *testing.T) {
	assert.Equal(t, float64(10), parseWindMph("10 mph"))
	assert.Equal(t, float64(5), parseWindMph("5 to 15 mph"))
	assert.Equal(t, float64(0), parseWindMph("calm"))
}

func TestRecommendations(t *testing.T) {
	t.Run("Freezing", func(t *testing.T) {
		recs := Recommendations(model.WeatherSnapshot{Temperature: 0, Condition: "Clear"})
		assert.Contains(t, recs, "Heavy layers, coat, warm accessories")
	})

	t.Run("Rain Adds Waterproof Layer", func(t *testing.T) {
		recs := Recommendations(model.WeatherSnapshot{Temperature: 18, Condition: "Light Rain"})
		assert.Contains(t, recs, "Waterproof layer, closed shoes")
	})

	t.Run("Snow Adds Boots", func(t *testing.T) {
		recs := Recommendations(model.WeatherSnapshot{Temperature: -2, Condition: "Heavy Snow"})
		assert.Contains(t, recs, "Waterproof boots, warm socks")
	})

	t.Run("Strong Wind Adds Windbreaker", func(t *testing.T) {
		recs := Recommendations(model.WeatherSnapshot{Temperature: 20, Condition: "Sunny", WindSpeed: 30})
		assert.Contains(t, recs, "Windbreaker or layered outfit")
	})
}
