package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/pkg/locale"
)

type fakeGateway struct {
	location    *entity.Location
	resolveErr  error
	current     *entity.CurrentWeather
	currentErr  error
	feed        *entity.ForecastFeed
	forecastErr error
	queries     []string
}

func (g *fakeGateway) ResolveCity(_ context.Context, name string) (*entity.Location, error) {
	g.queries = append(g.queries, name)
	if g.resolveErr != nil {
		return nil, g.resolveErr
	}
	location := *g.location
	location.Query = name
	return &location, nil
}

func (g *fakeGateway) CurrentConditions(context.Context, float64, float64) (*entity.CurrentWeather, error) {
	return g.current, g.currentErr
}

func (g *fakeGateway) Forecast(context.Context, float64, float64) (*entity.ForecastFeed, error) {
	return g.feed, g.forecastErr
}

func (g *fakeGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func madrid() *entity.Location {
	return &entity.Location{Name: "Madrid", LocalizedName: "Madrid", Country: "ES", Lat: 40.4165, Lon: -3.7026}
}

func TestGetCurrentWeather(t *testing.T) {
	gateway := &fakeGateway{
		location: madrid(),
		current: &entity.CurrentWeather{
			City:           "Madrid",
			Country:        "ES",
			TimezoneOffset: 7200,
			Description:    "cielo claro",
			Icon:           "01d",
			Temp:           floatPtr(24.3),
			WindDeg:        floatPtr(250),
		},
	}
	uc := NewWeatherUseCase(gateway, locale.New("es"), 5, 7)

	report, err := uc.GetCurrentWeather(context.Background(), "  Madrid ")
	if err != nil {
		t.Fatalf("GetCurrentWeather returned error: %v", err)
	}

	if gateway.queries[0] != "Madrid" {
		t.Errorf("query = %q, want trimmed name", gateway.queries[0])
	}
	if report.Description != "Cielo claro" {
		t.Errorf("Description = %q, want Cielo claro", report.Description)
	}
	if report.Emoji != "☀️" {
		t.Errorf("Emoji = %q, want ☀️", report.Emoji)
	}
	if report.CountryName != "España" || report.Location.CountryName != "España" {
		t.Errorf("country names = (%q, %q), want España", report.CountryName, report.Location.CountryName)
	}
	if report.Timezone != "UTC +2h" {
		t.Errorf("Timezone = %q, want UTC +2h", report.Timezone)
	}
	if report.IconURL != "https://openweathermap.org/img/wn/01d@2x.png" {
		t.Errorf("IconURL = %q", report.IconURL)
	}
	if !report.Wind.Available || report.Wind.Label != "W" || report.Wind.Degrees != 250 {
		t.Errorf("Wind = %+v, want W 250", report.Wind)
	}
}

func TestGetCurrentWeatherMissingFields(t *testing.T) {
	gateway := &fakeGateway{location: madrid(), current: &entity.CurrentWeather{City: "Madrid"}}
	uc := NewWeatherUseCase(gateway, locale.New("es"), 5, 7)

	report, err := uc.GetCurrentWeather(context.Background(), "Madrid")
	if err != nil {
		t.Fatalf("GetCurrentWeather returned error: %v", err)
	}
	if report.Description != locale.Placeholder || report.Emoji != DefaultEmoji {
		t.Errorf("unexpected description (%q, %q)", report.Description, report.Emoji)
	}
	if report.Wind.Available || report.Wind.Label != "—" {
		t.Errorf("Wind = %+v, want unavailable", report.Wind)
	}
	if report.IconURL != "" {
		t.Errorf("IconURL = %q, want empty", report.IconURL)
	}
}

func TestGetCurrentWeatherErrors(t *testing.T) {
	transportErr := &model.TransportError{Operation: "current conditions", StatusCode: 500}

	tests := []struct {
		name    string
		city    string
		gateway *fakeGateway
		check   func(error) bool
	}{
		{
			name:    "empty city",
			city:    "   ",
			gateway: &fakeGateway{location: madrid()},
			check:   func(err error) bool { return errors.Is(err, model.ErrEmptyCity) },
		},
		{
			name:    "unknown city",
			city:    "Atlantis",
			gateway: &fakeGateway{resolveErr: model.ErrCityNotFound},
			check:   func(err error) bool { return errors.Is(err, model.ErrCityNotFound) },
		},
		{
			name:    "provider failure",
			city:    "Madrid",
			gateway: &fakeGateway{location: madrid(), currentErr: transportErr},
			check:   model.IsTransportError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewWeatherUseCase(tt.gateway, locale.New("es"), 5, 7)
			report, err := uc.GetCurrentWeather(context.Background(), tt.city)
			if report != nil {
				t.Errorf("report = %+v, want nil", report)
			}
			if !tt.check(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}

	t.Run("empty city skips the provider", func(t *testing.T) {
		gateway := &fakeGateway{location: madrid()}
		_, _ = NewWeatherUseCase(gateway, locale.New("es"), 5, 7).GetCurrentWeather(context.Background(), "")
		if len(gateway.queries) != 0 {
			t.Errorf("provider queried %d times", len(gateway.queries))
		}
	})
}

func TestGetForecast(t *testing.T) {
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC).Unix()
	var samples []entity.ForecastSample
	for h := int64(0); h < 24*6; h += 3 {
		samples = append(samples, entity.ForecastSample{
			Timestamp:   start + h*3600,
			Temp:        floatPtr(15),
			WindDeg:     floatPtr(90),
			Description: "nubes dispersas",
		})
	}
	gateway := &fakeGateway{location: madrid(), feed: &entity.ForecastFeed{City: "Madrid", Samples: samples}}
	uc := NewWeatherUseCase(gateway, locale.New("es"), 5, 7)

	tests := []struct {
		name     string
		days     int
		expected int
	}{
		{name: "default", days: 0, expected: 5},
		{name: "requested", days: 3, expected: 3},
		{name: "capped by max days", days: 10, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := uc.GetForecast(context.Background(), "Madrid", tt.days)
			if err != nil {
				t.Fatalf("GetForecast returned error: %v", err)
			}
			if len(report.Days) != tt.expected {
				t.Fatalf("got %d days, want %d", len(report.Days), tt.expected)
			}
			if report.Days[0].Description != "Nubes dispersas" {
				t.Errorf("Description = %q, want Nubes dispersas", report.Days[0].Description)
			}
			if report.Days[0].Wind.Label != "E" {
				t.Errorf("Wind = %+v, want E", report.Days[0].Wind)
			}
			if report.Location.CountryName != "España" {
				t.Errorf("CountryName = %q", report.Location.CountryName)
			}
		})
	}
}

func TestForecastDays(t *testing.T) {
	tests := []struct {
		name        string
		defaultDays int
		maxDays     int
		requested   int
		expected    int
	}{
		{name: "default", defaultDays: 5, maxDays: 7, requested: 0, expected: 5},
		{name: "negative", defaultDays: 5, maxDays: 7, requested: -2, expected: 5},
		{name: "in range", defaultDays: 5, maxDays: 7, requested: 7, expected: 7},
		{name: "above max", defaultDays: 5, maxDays: 7, requested: 9, expected: 7},
		{name: "default above max", defaultDays: 9, maxDays: 3, requested: 0, expected: 3},
		{name: "unset limits", defaultDays: 0, maxDays: 0, requested: 0, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewWeatherUseCase(&fakeGateway{}, locale.New("es"), tt.defaultDays, tt.maxDays)
			if got := uc.ForecastDays(tt.requested); got != tt.expected {
				t.Errorf("ForecastDays(%d) = %d, want %d", tt.requested, got, tt.expected)
			}
		})
	}
}

func TestExampleReport(t *testing.T) {
	report := NewWeatherUseCase(&fakeGateway{}, locale.New("es"), 5, 7).ExampleReport()

	if !report.Example || report.Location.DisplayName() != "Ejemplo City" {
		t.Errorf("unexpected example report %+v", report)
	}
	if report.Description != "Cielo claro" || report.Emoji != "☀️" {
		t.Errorf("unexpected description (%q, %q)", report.Description, report.Emoji)
	}
	if report.Wind.Available {
		t.Errorf("example report carries no bearing")
	}
}

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"clear sky", "☀️"},
		{"Cielo claro", "☀️"},
		{"broken clouds", "☁️"},
		{"lluvia ligera", "🌧️"},
		{"light intensity drizzle", "🌦️"},
		{"thunderstorm", "⛈️"},
		{"nevada", "❄️"},
		{"niebla", "🌫️"},
		{"smoke", DefaultEmoji},
		{"", DefaultEmoji},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := EmojiFor(tt.description); got != tt.expected {
				t.Errorf("EmojiFor(%q) = %q, want %q", tt.description, got, tt.expected)
			}
		})
	}
}
