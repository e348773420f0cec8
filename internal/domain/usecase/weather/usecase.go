package weather

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	// GetCurrentWeather geocodes the city and returns its current conditions ready for display
	GetCurrentWeather(ctx context.Context, city string) (*model.CurrentReport, error)

	// GetForecast geocodes the city and returns up to days daily summaries
	GetForecast(ctx context.Context, city string, days int) (*model.ForecastReport, error)

	// ExampleReport returns a static report shown when no API key is configured
	ExampleReport() *model.CurrentReport

	// ForecastDays clamps a requested number of forecast days to the configured range
	ForecastDays(requested int) int
}
