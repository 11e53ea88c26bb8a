package telegram

import (
	"errors"
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

// ReplyLogMiddleware logs replies that could not be delivered. A user who
// blocked the bot keeps their record; broadcasts count them as failures.
type ReplyLogMiddleware struct {
	log *slog.Logger
}

func NewReplyLogMiddleware(log *slog.Logger) *ReplyLogMiddleware {
	return &ReplyLogMiddleware{
		log: log,
	}
}

func (m *ReplyLogMiddleware) Handle(next tb.HandlerFunc) tb.HandlerFunc {
	return func(c tb.Context) error {
		rootErr := next(c)
		if rootErr == nil {
			return nil
		}

		var chatID int64
		if sender := c.Sender(); sender != nil {
			chatID = sender.ID
		}

		if errors.Is(rootErr, tb.ErrBlockedByUser) {
			m.log.Warn("Bot is blocked by user", "chatID", chatID, "error", rootErr)
			return nil
		}

		m.log.Error("Failed to reply", "chatID", chatID, "error", rootErr)
		return rootErr
	}
}
