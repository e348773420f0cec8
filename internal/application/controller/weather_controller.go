package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/compass"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/api/weather", controller.GetCurrentWeather)
	controller.api.GET("/api/forecast", controller.GetForecast)
	controller.api.GET("/api/compass", controller.GetCompass)
}

// GetCurrentWeather godoc
// @Summary Get the current weather of a city
// @Description Geocode a free-text city name and return its current conditions with display fields
// @Tags weather
// @Produce json
// @Produce application/msgpack
// @Param city query string true "City name, optionally with country code (e.g. Santiago, CL)"
// @Param format query string false "Response format" Enums(json, msgpack)
// @Success 200 {object} model.CurrentReport "Current weather report"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /api/weather [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))

	report, err := controller.useCase.GetCurrentWeather(c.Request().Context(), city)
	if err != nil {
		status, message := errorStatus(err, city)
		return respond(c, status, map[string]string{"error": message})
	}
	return respond(c, http.StatusOK, report)
}

// GetForecast godoc
// @Summary Get the daily forecast of a city
// @Description Aggregate the 3-hour forecast feed into daily summaries in the city's local time
// @Tags weather
// @Produce json
// @Produce application/msgpack
// @Param city query string true "City name"
// @Param days query int false "Number of days, clamped to the configured maximum" default(5)
// @Param format query string false "Response format" Enums(json, msgpack)
// @Success 200 {object} model.ForecastReport "Daily summaries"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /api/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), 0)

	report, err := controller.useCase.GetForecast(c.Request().Context(), city, days)
	if err != nil {
		status, message := errorStatus(err, city)
		return respond(c, status, map[string]string{"error": message})
	}
	return respond(c, http.StatusOK, report)
}

// GetCompass godoc
// @Summary Encode a wind bearing
// @Description Map a bearing in degrees to one of the eight compass sectors. Missing or non-numeric values yield the unavailable reading.
// @Tags weather
// @Produce json
// @Produce application/msgpack
// @Param deg query string false "Bearing in degrees"
// @Param format query string false "Response format" Enums(json, msgpack)
// @Success 200 {object} compass.Reading "Compass reading"
// @Router /api/compass [get]
func (controller *WeatherController) GetCompass(c echo.Context) error {
	var value any
	if deg := strings.TrimSpace(c.QueryParam("deg")); deg != "" {
		value = deg
	}
	return respond(c, http.StatusOK, compass.Encode(value))
}
