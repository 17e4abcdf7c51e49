package bot

import (
	"context"
	"log"

	"twentyone/internal/config"
	"twentyone/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func New(ctx context.Context, cfg *config.Config, history game.Recorder) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(ctx, api, cfg, history),
	}, nil
}

// Run dispatches updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("Bot started: @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.handler.sessions.StopAll()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			if update.CallbackQuery != nil {
				go b.handler.HandleCallback(update.CallbackQuery)
				continue
			}

			if update.Message != nil {
				go b.handler.HandleMessage(update.Message)
			}
		}
	}
}
