package processor

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-weather/internal/application/format"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/telegram"
)

// cityPrefixes are stripped from plain-text queries, matched case-insensitively
var cityPrefixes = []string{"clima en ", "clima ", "tiempo en ", "tiempo ", "weather in ", "weather "}

// Replier sends a text reply to a chat
type Replier interface {
	Reply(ctx context.Context, chatID int64, text string) error
}

type ChatProcessor struct {
	weatherUseCase weather.UseCase
	replier        Replier
}

func NewChatProcessor(weatherUseCase weather.UseCase, replier Replier) *ChatProcessor {
	return &ChatProcessor{
		weatherUseCase: weatherUseCase,
		replier:        replier,
	}
}

// HandleMessage implements the telegram.Handler interface
func (p *ChatProcessor) HandleMessage(ctx context.Context, message telegram.Message) error {
	requestID := uuid.NewString()
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.Int("update_id", message.UpdateID),
		zap.Int64("chat_id", message.ChatID),
	}
	log.Info(msg.GetMessage("bot.update", message.UpdateID, message.ChatID), fields...)

	if !message.IsText() {
		return p.reply(ctx, message.ChatID, msg.GetMessage("bot.text-only"))
	}

	if message.IsCommand() {
		switch message.Command {
		case "pronostico", "forecast":
			return p.forecast(ctx, message.ChatID, ParseCity(message.Arguments), fields)
		default:
			return p.reply(ctx, message.ChatID, msg.GetMessage("bot.greeting"))
		}
	}

	return p.current(ctx, message.ChatID, ParseCity(message.Text), fields)
}

// ParseCity extracts the city name from a free-text query such as "clima en Madrid".
// A bare prefix ("clima en ") yields an empty city.
func ParseCity(text string) string {
	t := strings.TrimLeftFunc(text, unicode.IsSpace)
	for _, prefix := range cityPrefixes {
		if len(t) >= len(prefix) && strings.EqualFold(t[:len(prefix)], prefix) {
			return strings.TrimSpace(t[len(prefix):])
		}
	}
	return strings.TrimSpace(t)
}

func (p *ChatProcessor) current(ctx context.Context, chatID int64, city string, fields []zap.Field) error {
	if city == "" {
		return p.reply(ctx, chatID, msg.GetMessage("bot.ask-city"))
	}
	if err := p.reply(ctx, chatID, msg.GetMessage("bot.searching", city)); err != nil {
		return err
	}

	report, err := p.weatherUseCase.GetCurrentWeather(ctx, city)
	if err != nil {
		return p.replyError(ctx, chatID, city, err, fields)
	}
	return p.reply(ctx, chatID, currentText(report))
}

func (p *ChatProcessor) forecast(ctx context.Context, chatID int64, city string, fields []zap.Field) error {
	if city == "" {
		return p.reply(ctx, chatID, msg.GetMessage("bot.ask-city"))
	}
	if err := p.reply(ctx, chatID, msg.GetMessage("bot.searching", city)); err != nil {
		return err
	}

	report, err := p.weatherUseCase.GetForecast(ctx, city, 0)
	if err != nil {
		return p.replyError(ctx, chatID, city, err, fields)
	}
	return p.reply(ctx, chatID, forecastText(report))
}

func (p *ChatProcessor) replyError(ctx context.Context, chatID int64, city string, err error, fields []zap.Field) error {
	switch {
	case errors.Is(err, model.ErrEmptyCity):
		return p.reply(ctx, chatID, msg.GetMessage("bot.ask-city"))
	case errors.Is(err, model.ErrCityNotFound):
		log.Info("City not found", append(fields, zap.String("city", city))...)
		return p.reply(ctx, chatID, msg.GetMessage("bot.not-found", city))
	default:
		log.Error("Weather lookup failed", append(fields, zap.String("city", city), zap.Error(err))...)
		return p.reply(ctx, chatID, msg.GetMessage("bot.error"))
	}
}

func (p *ChatProcessor) reply(ctx context.Context, chatID int64, text string) error {
	if err := p.replier.Reply(ctx, chatID, text); err != nil {
		log.Error(msg.GetMessage("bot.send-fail", chatID, err), zap.Int64("chat_id", chatID), zap.Error(err))
		return err
	}
	return nil
}

func currentText(report *model.CurrentReport) string {
	current := report.Current
	lines := []string{
		msg.GetMessage("bot.current-title", report.Emoji, report.Location.DisplayName(), report.CountryName),
		msg.GetMessage("bot.current-description", report.Description),
		msg.GetMessage("bot.current-temperature", format.Number(current.Temp), format.Number(current.FeelsLike)),
		msg.GetMessage("bot.current-humidity", format.Number(current.Humidity)),
		msg.GetMessage("bot.current-wind", format.Wind(current.WindSpeed, report.Wind)),
	}
	return strings.Join(lines, "\n")
}

func forecastText(report *model.ForecastReport) string {
	if len(report.Days) == 0 {
		return msg.GetMessage("bot.forecast-empty", report.Location.DisplayName())
	}

	lines := []string{msg.GetMessage("bot.forecast-title", report.Location.DisplayName(), report.Location.CountryName)}
	for _, day := range report.Days {
		lines = append(lines, msg.GetMessage("bot.forecast-day",
			weather.EmojiFor(day.Description),
			format.Day(day.Date),
			format.OrPlaceholder(day.Description),
			format.Number(day.TempDay),
			format.Number(day.TempMin),
			format.Number(day.TempMax),
			format.Percent(day.Pop),
			format.Wind(day.WindSpeed, day.Wind),
		))
	}
	return strings.Join(lines, "\n")
}
