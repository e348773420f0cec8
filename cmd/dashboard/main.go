package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go-weather/configs"
	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	gateway "go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/http"
	"go-weather/pkg/locale"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// @title go-weather API
// @version 1.0
// @description Current weather, daily forecast and compass readings backed by OpenWeatherMap.
// @BasePath /clima
func main() {
	env, err := configs.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	defer log.Sync()

	log.Info(msg.GetMessage("app.start", env.ApplicationName))
	if env.APIKey == "" {
		log.Warn(msg.GetMessage("app.missing-api-key"))
	}

	// Init infra
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("failed to load dashboard templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	middleware.SetupRequestLogger(e)

	api := e.Group(env.ContextPath)
	docs.SwaggerInfo.BasePath = env.ContextPath
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateway
	weatherGateway := gateway.NewWeatherGateway(
		gateway.WeatherGatewayConfig{
			BaseURL:    env.BaseURL,
			APIKey:     env.APIKey,
			Lang:       env.Lang,
			Units:      env.Units,
			HealthCity: env.DefaultCity,
		},
		http.ClientOptions{ReadTimeout: env.Timeout, Logger: http.NewZapLogger("openweathermap")},
	)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, locale.New(env.Lang), env.DefaultDays, env.MaxDays)
	healthUseCase := health.NewHealthUseCase(weatherGateway)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase)
	dashboardController := controller.NewDashboardController(api, weatherUseCase, controller.DashboardOptions{
		DefaultCity:      env.DefaultCity,
		MaxDays:          env.MaxDays,
		APIKeyConfigured: env.APIKey != "",
	})

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	dashboardController.InitDashboardRoutes()

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + env.Port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", env.ApplicationName, env.Port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop", env.ApplicationName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down the server: %v", err)
	}
}
