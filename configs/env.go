package configs

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

type EnvConfig struct {
	ApplicationName string
	Port            string
	ContextPath     string
	LogLevel        string

	APIKey      string
	BaseURL     string
	Lang        string
	Units       string
	Timeout     time.Duration
	DefaultDays int
	MaxDays     int
	DefaultCity string

	BotToken       string
	BotPollTimeout int
	BotDebug       bool
}

var Env *EnvConfig

// Load reads .env (if present), the application properties and the messages, then rebuilds the
// logger with the configured name and level. It must run before anything reads resource or msg.
func Load() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := resource.Init(resource.Path()); err != nil {
		return nil, err
	}
	if err := msg.Init(msg.Path()); err != nil {
		return nil, err
	}

	Env = &EnvConfig{
		ApplicationName: resource.GetStringOrDefault("app.name", "go-weather"),
		Port:            resource.GetStringOrDefault("app.server.port", "8080"),
		ContextPath:     resource.GetStringOrDefault("app.server.context-path", "/clima"),
		LogLevel:        resource.GetStringOrDefault("app.log.level", "info"),

		APIKey:      resource.GetString("app.weather.api-key"),
		BaseURL:     resource.GetStringOrDefault("app.weather.base-url", "https://api.openweathermap.org"),
		Lang:        resource.GetStringOrDefault("app.weather.lang", "es"),
		Units:       resource.GetStringOrDefault("app.weather.units", "metric"),
		Timeout:     resource.GetDuration("app.weather.timeout"),
		DefaultDays: resource.GetIntOrDefault("app.weather.forecast.default-days", 5),
		MaxDays:     resource.GetIntOrDefault("app.weather.forecast.max-days", 7),
		DefaultCity: resource.GetStringOrDefault("app.weather.default-city", "Madrid"),

		BotToken:       resource.GetString("app.bot.token"),
		BotPollTimeout: resource.GetIntOrDefault("app.bot.poll-timeout", 30),
		BotDebug:       resource.GetBool("app.bot.debug"),
	}
	if Env.Timeout <= 0 {
		Env.Timeout = 10 * time.Second
	}

	log.Init(Env.ApplicationName, Env.LogLevel)
	return Env, nil
}
