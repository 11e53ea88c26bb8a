package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

func NewBot(token string, handler *Handler, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
		OnError: func(err error, c tb.Context) {
			log.Error("telebot error", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler: handler,

		log: log.With("component", "bot"),
	}, nil
}

// Start blocks until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	b.bot.Use(NewReplyLogMiddleware(b.log).Handle)

	for command, kind := range commandKinds {
		b.bot.Handle(command, b.handler.Command(kind))
	}
	b.bot.Handle(tb.OnCallback, b.handler.Callback)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.log.Info("Starting bot", "username", b.bot.Me.Username)
	b.bot.Start()

	return nil
}
