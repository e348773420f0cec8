package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendClient defines the interface for sending Telegram messages
type SendClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender sends text replies to chats
type Sender struct {
	client SendClient
}

// NewSender creates and returns a new Sender
func NewSender(client SendClient) *Sender {
	return &Sender{client: client}
}

// Reply sends a plain text message to the chat
func (s *Sender) Reply(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.client.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}
