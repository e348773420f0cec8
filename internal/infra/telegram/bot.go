package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-weather/pkg/log"
	"go-weather/pkg/telegram"
)

// NewBotClient authenticates against the Bot API with the given token
func NewBotClient(token string, debug bool) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, errors.New("bot token is empty")
	}

	if err := telegram.UseZapLogger(); err != nil {
		log.Warnf("failed to install bot logger: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}
	bot.Debug = debug
	return bot, nil
}
