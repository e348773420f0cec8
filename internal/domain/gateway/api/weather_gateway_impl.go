package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

var acceptJSON = map[string]string{"Accept": "application/json"}

// WeatherGatewayConfig holds the provider settings read from the properties
type WeatherGatewayConfig struct {
	BaseURL    string
	APIKey     string
	Lang       string
	Units      string
	HealthCity string
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	config     WeatherGatewayConfig
	now        func() time.Time
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config WeatherGatewayConfig, clientOptions http.ClientOptions) WeatherGateway {
	if config.Lang == "" {
		config.Lang = "es"
	}
	if config.Units == "" {
		config.Units = "metric"
	}
	if config.HealthCity == "" {
		config.HealthCity = "Madrid"
	}

	clientOptions.DefaultQueryParams = map[string]string{"appid": config.APIKey}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(config.BaseURL, clientOptions),
		config:     config,
		now:        time.Now,
	}
}

// ResolveCity geocodes a place name, preferring the name localized in the configured language
func (w *weatherGatewayImpl) ResolveCity(ctx context.Context, name string) (*entity.Location, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return nil, model.ErrCityNotFound
	}

	var results []external.GeocodingResponse
	if err := w.get(ctx, "resolve city", "/geo/1.0/direct", map[string]string{"q": query, "limit": "1"}, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrCityNotFound, query)
	}

	item := results[0]
	return &entity.Location{
		Query:         query,
		Name:          item.Name,
		LocalizedName: localizedName(item, w.config.Lang, query),
		Country:       item.Country,
		State:         item.State,
		Lat:           item.Lat,
		Lon:           item.Lon,
	}, nil
}

// CurrentConditions gets the current weather for a coordinate pair
func (w *weatherGatewayImpl) CurrentConditions(ctx context.Context, lat float64, lon float64) (*entity.CurrentWeather, error) {
	var response external.CurrentWeatherResponse
	if err := w.get(ctx, "current conditions", "/data/2.5/weather", w.coordinateParams(lat, lon), &response); err != nil {
		return nil, err
	}

	condition := firstCondition(response.Weather)
	current := &entity.CurrentWeather{
		City:           response.Name,
		Country:        response.Sys.Country,
		Lat:            response.Coord.Lat,
		Lon:            response.Coord.Lon,
		TimezoneOffset: response.Timezone,
		Description:    condition.Description,
		Icon:           condition.Icon,
		Temp:           response.Main.Temp.Ptr(),
		FeelsLike:      response.Main.FeelsLike.Ptr(),
		TempMin:        response.Main.TempMin.Ptr(),
		TempMax:        response.Main.TempMax.Ptr(),
		Humidity:       response.Main.Humidity.Ptr(),
		Pressure:       response.Main.Pressure.Ptr(),
		Visibility:     response.Visibility.Ptr(),
		Clouds:         response.Clouds.All.Ptr(),
		WindSpeed:      response.Wind.Speed.Ptr(),
		WindDeg:        response.Wind.Deg.Ptr(),
		ObservedAt:     w.now().UTC(),
	}
	if response.Dt > 0 {
		current.ObservedAt = time.Unix(response.Dt, 0).UTC()
	}
	if response.Rain != nil {
		current.Rain1h = response.Rain.OneHour.Ptr()
	}
	if response.Snow != nil {
		current.Snow1h = response.Snow.OneHour.Ptr()
	}
	return current, nil
}

// Forecast gets the 5 day / 3 hour forecast feed for a coordinate pair
func (w *weatherGatewayImpl) Forecast(ctx context.Context, lat float64, lon float64) (*entity.ForecastFeed, error) {
	var response external.ForecastResponse
	if err := w.get(ctx, "forecast", "/data/2.5/forecast", w.coordinateParams(lat, lon), &response); err != nil {
		return nil, err
	}

	samples := make([]entity.ForecastSample, 0, len(response.List))
	for _, item := range response.List {
		condition := firstCondition(item.Weather)
		samples = append(samples, entity.ForecastSample{
			Timestamp:   item.Dt,
			Temp:        item.Main.Temp.Ptr(),
			TempMin:     item.Main.TempMin.Ptr(),
			TempMax:     item.Main.TempMax.Ptr(),
			Pop:         item.Pop.Ptr(),
			WindSpeed:   item.Wind.Speed.Ptr(),
			WindDeg:     item.Wind.Deg.Ptr(),
			Description: condition.Description,
			Icon:        condition.Icon,
		})
	}

	return &entity.ForecastFeed{
		City:           response.City.Name,
		Country:        response.City.Country,
		TimezoneOffset: response.City.Timezone,
		Samples:        samples,
	}, nil
}

// Health geocodes the configured probe city
func (w *weatherGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	if w.config.APIKey == "" {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"message": "API key is not configured"},
		}
	}

	start := w.now()
	_, err := w.ResolveCity(ctx, w.config.HealthCity)
	latency := w.now().Sub(start)

	switch {
	case err == nil, errors.Is(err, model.ErrCityNotFound):
		return model.ComponentHealthStatus{
			Status:  model.StatusUp,
			Details: map[string]string{"latency": latency.String()},
		}
	default:
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error(), "latency": latency.String()},
		}
	}
}

// get executes a GET and turns every failure into a *model.TransportError
func (w *weatherGatewayImpl) get(ctx context.Context, operation string, path string, params map[string]string, target any) error {
	_, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithHeaders(acceptJSON).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return nil
	}

	transportErr := &model.TransportError{Operation: operation, StatusCode: status, Err: err}
	if errResp != nil {
		transportErr.Message = errResp.(*external.APIErrorResponse).Message
	}
	return transportErr
}

func (w *weatherGatewayImpl) coordinateParams(lat float64, lon float64) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
		"units": w.config.Units,
		"lang":  w.config.Lang,
	}
}

// localizedName returns local_names[lang], else the provider name, else the query
func localizedName(item external.GeocodingResponse, lang string, query string) string {
	if name := item.LocalNames[lang]; name != "" {
		return name
	}
	if item.Name != "" {
		return item.Name
	}
	return query
}

func firstCondition(conditions []external.WeatherConditionDTO) external.WeatherConditionDTO {
	if len(conditions) == 0 {
		return external.WeatherConditionDTO{}
	}
	return conditions[0]
}
