package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/view"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

// DashboardOptions carries the settings the page needs besides the use case
type DashboardOptions struct {
	DefaultCity      string
	MaxDays          int
	APIKeyConfigured bool
}

type DashboardController struct {
	api     *echo.Group
	useCase weather.UseCase
	options DashboardOptions
}

func NewDashboardController(api *echo.Group, useCase weather.UseCase, options DashboardOptions) *DashboardController {
	if options.DefaultCity == "" {
		options.DefaultCity = "Madrid"
	}
	return &DashboardController{api: api, useCase: useCase, options: options}
}

// InitDashboardRoutes initializes the HTML dashboard routes. The echo instance must have a
// view.Renderer installed.
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("", controller.ShowDashboard)
	controller.api.GET("/", controller.ShowDashboard)
}

// ShowDashboard renders the current weather and the daily forecast of the requested city.
// Without an API key it renders the example report under a warning banner.
func (controller *DashboardController) ShowDashboard(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		city = controller.options.DefaultCity
	}
	days := controller.useCase.ForecastDays(numberutils.ToIntWithDefault(c.QueryParam("days"), 0))

	page := view.DashboardPage{
		Title:   "Dashboard Clima",
		City:    city,
		Days:    days,
		MaxDays: controller.options.MaxDays,
	}
	if page.MaxDays < days {
		page.MaxDays = days
	}

	if !controller.options.APIKeyConfigured {
		page.Banners = append(page.Banners, view.Banner{Kind: view.BannerWarning, Message: msg.GetMessage("weather.missing-api-key")})
		page.Current = controller.useCase.ExampleReport()
		return c.Render(http.StatusOK, view.DashboardTemplate, page)
	}

	ctx := c.Request().Context()

	current, err := controller.useCase.GetCurrentWeather(ctx, city)
	if err != nil {
		page.Banners = append(page.Banners, banner(err, city))
		return c.Render(http.StatusOK, view.DashboardTemplate, page)
	}
	page.Current = current

	forecast, err := controller.useCase.GetForecast(ctx, city, days)
	if err != nil {
		page.Banners = append(page.Banners, banner(err, city))
	} else {
		page.Forecast = forecast
	}

	return c.Render(http.StatusOK, view.DashboardTemplate, page)
}

// banner turns a use case error into the banner shown above the report
func banner(err error, city string) view.Banner {
	status, message := errorStatus(err, city)
	switch status {
	case http.StatusBadRequest:
		return view.Banner{Kind: view.BannerWarning, Message: message}
	case http.StatusNotFound:
		return view.Banner{Kind: view.BannerNotFound, Message: message}
	default:
		return view.Banner{Kind: view.BannerError, Message: message}
	}
}
