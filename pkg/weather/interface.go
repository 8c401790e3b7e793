package weather

import (
	"context"

	"wardrobe-ai/internal/model"
)

// IWeather is the weather collaborator contract. Implementations never fail
// the caller: any upstream problem degrades to the default snapshot.
type IWeather interface {
	GetByCoordinates(ctx context.Context, lat, lon float64) (model.WeatherSnapshot, error)
	GetByCity(ctx context.Context, city string) (model.WeatherSnapshot, error)
}
