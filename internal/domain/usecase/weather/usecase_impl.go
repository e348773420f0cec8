package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/compass"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/forecast"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/locale"
	"go-weather/pkg/log"
	"go-weather/pkg/util/numberutils"

	"go.uber.org/zap"
)

const iconURLPattern = "https://openweathermap.org/img/wn/%s@2x.png"

type weatherUseCase struct {
	apiGateway  api.WeatherGateway
	locale      *locale.Table
	defaultDays int
	maxDays     int
	now         func() time.Time
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, localeTable *locale.Table, defaultDays int, maxDays int) UseCase {
	if maxDays <= 0 {
		maxDays = 5
	}
	if defaultDays <= 0 || defaultDays > maxDays {
		defaultDays = maxDays
	}

	return &weatherUseCase{
		apiGateway:  apiGateway,
		locale:      localeTable,
		defaultDays: defaultDays,
		maxDays:     maxDays,
		now:         time.Now,
	}
}

// GetCurrentWeather geocodes the city and returns its current conditions ready for display
func (uc *weatherUseCase) GetCurrentWeather(ctx context.Context, city string) (*model.CurrentReport, error) {
	location, err := uc.resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	current, err := uc.apiGateway.CurrentConditions(ctx, location.Lat, location.Lon)
	if err != nil {
		return nil, fmt.Errorf("failed to get current conditions for %s: %w", location.DisplayName(), err)
	}

	log.Info("Current weather resolved",
		zap.String("city", location.DisplayName()),
		zap.Float64("lat", location.Lat),
		zap.Float64("lon", location.Lon))

	return uc.buildCurrentReport(*location, *current), nil
}

// GetForecast geocodes the city and returns up to days daily summaries
func (uc *weatherUseCase) GetForecast(ctx context.Context, city string, days int) (*model.ForecastReport, error) {
	location, err := uc.resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	feed, err := uc.apiGateway.Forecast(ctx, location.Lat, location.Lon)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for %s: %w", location.DisplayName(), err)
	}

	summaries := forecast.Summarize(feed.Samples, feed.TimezoneOffset, uc.ForecastDays(days))
	for i := range summaries {
		summaries[i].Description = uc.locale.Capitalize(summaries[i].Description)
	}

	log.Info("Forecast resolved",
		zap.String("city", location.DisplayName()),
		zap.Int("samples", len(feed.Samples)),
		zap.Int("days", len(summaries)))

	return &model.ForecastReport{
		Location:       *location,
		TimezoneOffset: feed.TimezoneOffset,
		Days:           summaries,
	}, nil
}

// ExampleReport returns a static report shown when no API key is configured
func (uc *weatherUseCase) ExampleReport() *model.CurrentReport {
	location := entity.Location{Query: "Ejemplo City", Name: "Ejemplo City", LocalizedName: "Ejemplo City"}
	current := entity.CurrentWeather{
		City:        "Ejemplo City",
		Description: "cielo claro",
		Icon:        "01d",
		Temp:        floatPtr(21.3),
		FeelsLike:   floatPtr(20.0),
		Humidity:    floatPtr(60),
		WindSpeed:   floatPtr(3.4),
		ObservedAt:  uc.now().UTC(),
	}

	report := uc.buildCurrentReport(location, current)
	report.Example = true
	return report
}

// ForecastDays clamps a requested number of forecast days to [1, maxDays]; non-positive values
// select the configured default
func (uc *weatherUseCase) ForecastDays(requested int) int {
	if requested <= 0 {
		return uc.defaultDays
	}
	return numberutils.ClampInt(requested, 1, uc.maxDays)
}

func (uc *weatherUseCase) resolve(ctx context.Context, city string) (*entity.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, model.ErrEmptyCity
	}

	location, err := uc.apiGateway.ResolveCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve city %q: %w", city, err)
	}

	location.CountryName = uc.locale.CountryName(location.Country)
	return location, nil
}

func (uc *weatherUseCase) buildCurrentReport(location entity.Location, current entity.CurrentWeather) *model.CurrentReport {
	report := &model.CurrentReport{
		Location:    location,
		Current:     current,
		Emoji:       EmojiFor(current.Description),
		Description: uc.locale.Capitalize(current.Description),
		Wind:        compass.FromDegrees(current.WindDeg),
		CountryName: uc.locale.CountryName(current.Country),
		Timezone:    locale.TimezoneText(current.TimezoneOffset),
	}

	if report.Description == "" {
		report.Description = locale.Placeholder
	}
	if current.Icon != "" {
		report.IconURL = fmt.Sprintf(iconURLPattern, current.Icon)
	}
	return report
}

func floatPtr(v float64) *float64 {
	return &v
}
