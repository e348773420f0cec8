package api

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// WeatherGateway defines the interface for the OpenWeatherMap calls
type WeatherGateway interface {
	// ResolveCity geocodes a free-text place name to its first match.
	// Returns model.ErrCityNotFound when the provider has no match
	ResolveCity(ctx context.Context, name string) (*entity.Location, error)

	// CurrentConditions gets the current weather for a coordinate pair
	CurrentConditions(ctx context.Context, lat float64, lon float64) (*entity.CurrentWeather, error)

	// Forecast gets the 5 day / 3 hour forecast feed for a coordinate pair
	Forecast(ctx context.Context, lat float64, lon float64) (*entity.ForecastFeed, error)

	// Health reports whether the provider answers with the configured key
	Health(ctx context.Context) model.ComponentHealthStatus
}
