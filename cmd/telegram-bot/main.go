package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-weather/configs"
	"go-weather/internal/application/processor"
	gateway "go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/weather"
	botinfra "go-weather/internal/infra/telegram"
	"go-weather/pkg/http"
	"go-weather/pkg/locale"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/telegram"
)

func main() {
	env, err := configs.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	defer log.Sync()

	log.Info(msg.GetMessage("app.start", env.ApplicationName))
	if env.BotToken == "" {
		log.Fatal(msg.GetMessage("bot.missing-token"))
	}
	if env.APIKey == "" {
		log.Fatal(msg.GetMessage("bot.missing-api-key"))
	}

	// Init infra
	bot, err := botinfra.NewBotClient(env.BotToken, env.BotDebug)
	if err != nil {
		log.Fatalf("failed to start bot: %v", err)
	}
	log.Info(msg.GetMessage("bot.authorized", bot.Self.UserName))

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

	// Init Processor
	chatProcessor := processor.NewChatProcessor(weatherUseCase, telegram.NewSender(bot))

	// Init Worker
	worker, err := telegram.NewWorker(bot, chatProcessor, &telegram.WorkerConfig{PollTimeout: env.BotPollTimeout})
	if err != nil {
		log.Fatalf("failed to create update worker: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker.Start(ctx)
	log.Info(msg.GetMessage("app.stop", env.ApplicationName))
}
