package telegram

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

//go:generate mockgen -package mocks -destination mocks/telebot.go -mock_names Context=MockTelebotContext gopkg.in/telebot.v3 Context

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . Subscriptions

type Subscriptions interface {
	IsSubscribed(chatID int64) (bool, error)
	Subscribe(chatID int64) (bool, error)
	Unsubscribe(chatID int64) (bool, error)
}

// Kind identifies what the user asked for, independent of whether it came as a
// command or as a menu button.
type Kind int

const (
	KindUnknown Kind = iota
	KindStart
	KindSubscribe
	KindUnsubscribe
	KindStatus
	KindHelp
	KindAbout
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindSubscribe:
		return "subscribe"
	case KindUnsubscribe:
		return "unsubscribe"
	case KindStatus:
		return "status"
	case KindHelp:
		return "help"
	case KindAbout:
		return "about"
	default:
		return "unknown"
	}
}

var commandKinds = map[string]Kind{
	"/start":         KindStart,
	"/digest_on":     KindSubscribe,
	"/digest_off":    KindUnsubscribe,
	"/digest_status": KindStatus,
	"/help":          KindHelp,
}

var callbackKinds = map[string]Kind{
	callbackSubscribe: KindSubscribe,
	callbackAbout:     KindAbout,
}

type (
	Reply struct {
		Text   string
		Markup *tb.ReplyMarkup
	}

	route func(chatID int64) Reply

	Handler struct {
		subscriptions Subscriptions
		texts         Texts

		routes map[Kind]route

		log *slog.Logger
	}
)

func NewHandler(subscriptions Subscriptions, texts Texts, log *slog.Logger) *Handler {
	h := &Handler{
		subscriptions: subscriptions,
		texts:         texts,
		log:           log.With("component", "handler"),
	}

	h.routes = map[Kind]route{
		KindStart:       h.start,
		KindSubscribe:   h.subscribe,
		KindUnsubscribe: h.unsubscribe,
		KindStatus:      h.status,
		KindHelp:        h.help,
		KindAbout:       h.about,
	}

	return h
}

// Route builds the single reply for an interaction. It reports false for kinds
// that have no handler.
func (h *Handler) Route(kind Kind, chatID int64) (Reply, bool) {
	fn, ok := h.routes[kind]
	if !ok {
		return Reply{}, false
	}

	h.log.Debug("routing interaction", "chatID", chatID, "kind", kind.String())
	return fn(chatID), true
}

// Command returns a telebot handler answering with a new message.
func (h *Handler) Command(kind Kind) tb.HandlerFunc {
	return func(c tb.Context) error {
		reply, ok := h.Route(kind, c.Sender().ID)
		if !ok {
			return nil
		}
		if reply.Markup != nil {
			return c.Send(reply.Text, reply.Markup)
		}
		return c.Send(reply.Text)
	}
}

// Callback handles menu buttons: the callback is answered first and the menu
// message is edited in place.
func (h *Handler) Callback(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.log.Debug("callback router called with nil callback")
		return nil
	}

	chatID := c.Sender().ID

	// Respond to callback first to remove loading state
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "error", err, "chatID", chatID)
	}

	// Use Data field and trim the prefix if present
	data := callback.Data
	if len(data) > 0 && data[0] == '\f' {
		data = data[1:]
	}

	kind, ok := callbackKinds[data]
	if !ok {
		h.log.Debug("no handler matched for callback", "chatID", chatID, "data", data)
		return nil
	}

	reply, ok := h.Route(kind, chatID)
	if !ok {
		return nil
	}
	if reply.Markup != nil {
		return c.Edit(reply.Text, reply.Markup)
	}
	return c.Edit(reply.Text)
}

func (h *Handler) start(int64) Reply {
	markup := &tb.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(subscribeBtnText, callbackSubscribe)),
		markup.Row(markup.Data(aboutBtnText, callbackAbout)),
	)

	return Reply{Text: h.texts.welcome(), Markup: markup}
}

func (h *Handler) subscribe(chatID int64) Reply {
	subscribed, err := h.subscriptions.Subscribe(chatID)
	if err != nil {
		h.log.Error("failed to subscribe",
			"error", err,
			"chatID", chatID)
		return Reply{Text: genericErrorMsg}
	}

	h.log.Info("user subscribed to digest", "chatID", chatID)
	return Reply{Text: h.texts.subscription(subscribed)}
}

func (h *Handler) unsubscribe(chatID int64) Reply {
	subscribed, err := h.subscriptions.Unsubscribe(chatID)
	if err != nil {
		h.log.Error("failed to unsubscribe",
			"error", err,
			"chatID", chatID)
		return Reply{Text: genericErrorMsg}
	}

	h.log.Info("user unsubscribed from digest", "chatID", chatID)
	return Reply{Text: h.texts.subscription(subscribed)}
}

func (h *Handler) status(chatID int64) Reply {
	subscribed, err := h.subscriptions.IsSubscribed(chatID)
	if err != nil {
		h.log.Error("failed to check if user is subscribed",
			"error", err,
			"chatID", chatID)
		return Reply{Text: genericErrorMsg}
	}

	return Reply{Text: h.texts.status(subscribed)}
}

func (h *Handler) help(int64) Reply {
	return Reply{Text: h.texts.help()}
}

func (h *Handler) about(int64) Reply {
	return Reply{Text: h.texts.about()}
}
