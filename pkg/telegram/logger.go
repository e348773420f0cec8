package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-weather/pkg/log"
)

// zapBotLogger routes the library's debug output to the application logger
type zapBotLogger struct{}

func (zapBotLogger) Println(v ...interface{}) {
	log.Debug(strings.TrimSpace(fmt.Sprintln(v...)))
}

func (zapBotLogger) Printf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// UseZapLogger replaces the library's standard logger
func UseZapLogger() error {
	return tgbotapi.SetLogger(zapBotLogger{})
}
