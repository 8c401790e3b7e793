package httpserver

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wardrobe-ai/internal/model"
	pkgErrors "wardrobe-ai/pkg/errors"
	"wardrobe-ai/pkg/moods"
	"wardrobe-ai/pkg/response"
	"wardrobe-ai/pkg/weather"
)

// registerCatalogRoutes exposes the public, read-only endpoints: weather
// conditions and the mood catalog. No auth, same as health.
func (srv HTTPServer) registerCatalogRoutes(api *gin.RouterGroup) {
	api.GET("/weather", srv.getWeather)
	api.GET("/moods", srv.listMoods)
}

// getWeather godoc
// @Summary     Current weather
// @Description Resolves conditions by coordinates or city name. Upstream failures degrade to a fixed default snapshot, never an error.
// @Tags        Catalog
// @Produce     json
// @Param       lat  query number false "Latitude"
// @Param       lon  query number false "Longitude"
// @Param       city query string false "City name"
// @Success     200 {object} response.Resp
// @Router      /api/v1/weather [get]
func (srv HTTPServer) getWeather(c *gin.Context) {
	ctx := c.Request.Context()

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	city := c.Query("city")

	var (
		snapshot model.WeatherSnapshot
		err      error
	)
	switch {
	case latStr != "" && lonStr != "":
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			response.Error(c, pkgErrors.NewHTTPError(400, "lat and lon must be numbers"))
			return
		}
		snapshot, err = srv.weather.GetByCoordinates(ctx, lat, lon)
	case city != "":
		snapshot, err = srv.weather.GetByCity(ctx, city)
	default:
		response.Error(c, pkgErrors.NewHTTPError(400, "provide lat/lon or city"))
		return
	}
	if err != nil {
		// The client already substituted the default snapshot.
		srv.l.Warnf(ctx, "weather lookup degraded: %v", err)
	}

	response.OK(c, gin.H{
		"weather":         snapshot,
		"recommendations": weather.Recommendations(snapshot),
	})
}

// listMoods godoc
// @Summary     Fashion mood catalog
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/moods [get]
func (srv HTTPServer) listMoods(c *gin.Context) {
	response.OK(c, gin.H{"moods": moods.All()})
}
