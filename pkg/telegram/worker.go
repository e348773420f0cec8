package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-weather/pkg/log"
)

// Message is the part of a Telegram update the handlers care about
type Message struct {
	UpdateID  int
	ChatID    int64
	From      string
	Text      string
	Command   string
	Arguments string
}

// IsText reports whether the message carries text, even if only blanks. Photos, stickers and
// the like do not.
func (m Message) IsText() bool {
	return m.Text != ""
}

// IsCommand reports whether the message starts with a bot command such as /start
func (m Message) IsCommand() bool {
	return m.Command != ""
}

// HandlerFunc defines a function that handles a Telegram Message
type HandlerFunc func(ctx context.Context, msg Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Handler defines an interface that processes a Telegram Message
type Handler interface {
	HandleMessage(ctx context.Context, msg Message) error
}

// UpdatesClient is the subset of *tgbotapi.BotAPI the worker needs
type UpdatesClient interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	PollTimeout int
	Offset      int
}

// Worker long-polls updates and hands each message to the handler
type Worker struct {
	client      UpdatesClient
	handler     Handler
	pollTimeout int
	offset      int
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or PollTimeout is zero, a 30 second long-poll timeout is used.
// PollTimeout must not be negative.
func NewWorker(client UpdatesClient, handler Handler, config *WorkerConfig) (*Worker, error) {
	pollTimeout, offset := 30, 0
	if config != nil {
		if config.PollTimeout != 0 {
			pollTimeout = config.PollTimeout
		}
		offset = config.Offset
	}

	if pollTimeout < 0 {
		return nil, errors.New("pollTimeout must not be negative")
	}
	if client == nil || handler == nil {
		return nil, errors.New("client and handler are required")
	}

	return &Worker{client: client, handler: handler, pollTimeout: pollTimeout, offset: offset}, nil
}

// Start consumes updates until ctx is canceled or the updates channel is closed. Messages are
// handled one at a time, in arrival order.
func (w *Worker) Start(ctx context.Context) {
	config := tgbotapi.NewUpdate(w.offset)
	config.Timeout = w.pollTimeout
	updates := w.client.GetUpdatesChan(config)

	for {
		select {
		case <-ctx.Done():
			w.client.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			w.handleUpdate(ctx, update)
		}
	}
}

func (w *Worker) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg, ok := FromUpdate(update)
	if !ok {
		log.Debugf("skipping update %d without a message", update.UpdateID)
		return
	}

	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		log.Errorf("error processing update %d from chat %d: %v", msg.UpdateID, msg.ChatID, err)
	}
}

// FromUpdate extracts the Message of an update. Updates without a message (edits, callbacks,
// channel posts) return false.
func FromUpdate(update tgbotapi.Update) (Message, bool) {
	if update.Message == nil || update.Message.Chat == nil {
		return Message{}, false
	}

	in := update.Message
	msg := Message{
		UpdateID: update.UpdateID,
		ChatID:   in.Chat.ID,
		Text:     in.Text,
	}
	if in.From != nil {
		msg.From = in.From.UserName
	}
	if in.IsCommand() {
		msg.Command = strings.ToLower(in.Command())
		msg.Arguments = strings.TrimSpace(in.CommandArguments())
	}
	return msg, true
}
