// Package bot is the Telegram front-end: it receives commands, messages and
// button presses and answers them through the search service.
package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var ErrNoToken = errors.New("telegram bot token is not set")

// Bot owns the Telegram connection
type Bot struct {
	api     *tgbot.Bot
	handler *Handler
	status  interfaces.StatusStore
}

// Connect creates the Telegram client. Creating it validates the token against the
// API, so it is retried according to policy.
func Connect(ctx context.Context, token string, policy RetryPolicy, handler *Handler, status interfaces.StatusStore) (*Bot, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	b := &Bot{handler: handler, status: status}

	err := policy.Do(ctx, "telegram connect", func() error {
		api, err := tgbot.New(token,
			tgbot.WithDefaultHandler(b.dispatch),
			tgbot.WithErrorsHandler(func(err error) {
				logging.Warn("Telegram polling error", "error", err)
			}),
		)
		if err != nil {
			return err
		}
		b.api = api
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram after %d attempts: %w", policy.MaxRetries+1, err)
	}

	logging.Info("Connected to Telegram")
	return b, nil
}

// Run polls for updates until ctx is cancelled
func (b *Bot) Run(ctx context.Context) {
	if b.status != nil {
		b.status.SetBotConnected(true)
		defer b.status.SetBotConnected(false)
	}

	logging.Info("Telegram bot polling started")
	b.api.Start(ctx)
	logging.Info("Telegram bot polling stopped")
}

func (b *Bot) dispatch(ctx context.Context, api *tgbot.Bot, update *models.Update) {
	b.handler.HandleUpdate(ctx, api, update)
}
