package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"wardrobe-ai/internal/model"
)

// Client fetches current conditions from the National Weather Service API.
// No API key required. Responses are cached per rounded coordinate pair.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, model.WeatherSnapshot]
}

// NewClient creates a weather client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(requestsPerSecond, requestBurst),
		cache:      expirable.NewLRU[string, model.WeatherSnapshot](cacheSize, nil, ttl),
	}
}

// GetByCoordinates resolves current weather for a lat/lon pair.
// Flow: /points/{lat},{lon}, then the forecast URL's first period; humidity
// comes from the nearest observation station, best-effort. Any failure falls
// back to the default snapshot. The error return reports the degradation but
// the snapshot is always usable.
func (c *Client) GetByCoordinates(ctx context.Context, lat, lon float64) (model.WeatherSnapshot, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	snapshot, err := c.fetch(ctx, lat, lon)
	if err != nil {
		return DefaultSnapshot(""), fmt.Errorf("weather: degraded to default snapshot: %w", err)
	}

	c.cache.Add(key, snapshot)
	return snapshot, nil
}

// GetByCity resolves weather for a known city name. Unknown cities fall back
// to the default snapshot carrying the requested name.
func (c *Client) GetByCity(ctx context.Context, city string) (model.WeatherSnapshot, error) {
	coords, ok := cityCoords[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return DefaultSnapshot(city), fmt.Errorf("weather: unknown city %q, using default snapshot", city)
	}
	return c.GetByCoordinates(ctx, coords.Lat, coords.Lon)
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (model.WeatherSnapshot, error) {
	var points pointsResponse
	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon)
	if err := c.getJSON(ctx, pointsURL, &points); err != nil {
		return model.WeatherSnapshot{}, err
	}
	if points.Properties.Forecast == "" {
		return model.WeatherSnapshot{}, fmt.Errorf("points response missing forecast URL")
	}

	var forecast forecastResponse
	if err := c.getJSON(ctx, points.Properties.Forecast, &forecast); err != nil {
		return model.WeatherSnapshot{}, err
	}
	if len(forecast.Properties.Periods) == 0 {
		return model.WeatherSnapshot{}, fmt.Errorf("forecast has no periods")
	}
	current := forecast.Properties.Periods[0]

	// NWS reports Fahrenheit and mph; store Celsius and km/h.
	tempC := math.Round((current.Temperature - 32) * 5 / 9)
	windKmh := int(math.Round(parseWindMph(current.WindSpeed) * 1.609))

	condition := current.ShortForecast
	if condition == "" {
		condition = "Unknown"
	}

	location := "Unknown"
	if city := points.Properties.RelativeLocation.Properties.City; city != "" {
		location = city + ", " + points.Properties.RelativeLocation.Properties.State
	}

	return model.WeatherSnapshot{
		Temperature: tempC,
		FeelsLike:   tempC, // the forecast endpoint has no feels-like reading
		Condition:   condition,
		Humidity:    c.fetchHumidity(ctx, points.Properties.ObservationStations),
		WindSpeed:   windKmh,
		Location:    location,
	}, nil
}

// fetchHumidity is best-effort; a failed lookup returns the 50% default.
func (c *Client) fetchHumidity(ctx context.Context, stationsURL string) int {
	const defaultHumidity = 50
	if stationsURL == "" {
		return defaultHumidity
	}

	var stations stationsResponse
	if err := c.getJSON(ctx, stationsURL, &stations); err != nil || len(stations.Features) == 0 {
		return defaultHumidity
	}
	stationID := stations.Features[0].Properties.StationIdentifier
	if stationID == "" {
		return defaultHumidity
	}

	var obs observationResponse
	obsURL := fmt.Sprintf("%s/stations/%s/observations/latest", c.baseURL, stationID)
	if err := c.getJSON(ctx, obsURL, &obs); err != nil || obs.Properties.RelativeHumidity.Value == nil {
		return defaultHumidity
	}
	return int(math.Round(*obs.Properties.RelativeHumidity.Value))
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("weather: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: API error %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather: failed to decode response: %w", err)
	}
	return nil
}

var windRe = regexp.MustCompile(`(\d+)`)

// parseWindMph pulls the leading number out of strings like "10 mph" or
// "5 to 15 mph".
func parseWindMph(s string) float64 {
	match := windRe.FindString(s)
	if match == "" {
		return 0
	}
	mph, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return mph
}

// Recommendations maps a snapshot to clothing guidance strings.
func Recommendations(w model.WeatherSnapshot) []string {
	var recs []string

	switch {
	case w.Temperature < 5:
		recs = append(recs, "Heavy layers, coat, warm accessories")
	case w.Temperature < 15:
		recs = append(recs, "Light jacket or sweater, layers")
	case w.Temperature < 25:
		recs = append(recs, "Light clothing, optional light layer")
	default:
		recs = append(recs, "Light, breathable fabrics")
	}

	condition := strings.ToLower(w.Condition)
	if strings.Contains(condition, "rain") || strings.Contains(condition, "drizzle") || strings.Contains(condition, "thunderstorm") {
		recs = append(recs, "Waterproof layer, closed shoes")
	}
	if strings.Contains(condition, "snow") {
		recs = append(recs, "Waterproof boots, warm socks")
	}
	if w.WindSpeed > 20 {
		recs = append(recs, "Windbreaker or layered outfit")
	}

	return recs
}
