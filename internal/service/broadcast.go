package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Roma7-7-7/telegram"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/digest"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . TelegramClient

//go:generate mockgen -package mocks -destination mocks/broadcast.go . SubscribersReader,DigestFetcher

const (
	ReasonNoSubscribers     = "no subscribers"
	ReasonDigestUnavailable = "digest unavailable"
	ReasonEmptyDigest       = "empty digest"
)

type RunState string

const (
	RunCompleted    RunState = "completed"
	RunAbortedEarly RunState = "aborted_early"
)

type (
	Clock interface {
		Now() time.Time
	}

	TelegramClient interface {
		SendMessage(context.Context, string, string) error
	}

	SubscribersReader interface {
		DigestSubscribers() ([]dal.Subscriber, error)
	}

	DigestFetcher interface {
		Fetch(ctx context.Context) (digest.Digest, error)
	}

	// Summary describes the outcome of one broadcast run.
	Summary struct {
		State       RunState
		Reason      string
		Subscribers int
		Sent        int
		Failed      int
		PostsCount  int
		StartedAt   time.Time
		FinishedAt  time.Time
	}

	Broadcast struct {
		subscribers SubscribersReader
		digests     DigestFetcher
		telegram    TelegramClient
		clock       Clock

		sendInterval time.Duration
		log          *slog.Logger
		mx           *sync.Mutex
	}
)

func NewBroadcast(
	subscribers SubscribersReader,
	digests DigestFetcher,
	telegram TelegramClient,
	clock Clock,
	sendInterval time.Duration,
	log *slog.Logger,
) *Broadcast {
	return &Broadcast{
		subscribers: subscribers,
		digests:     digests,
		telegram:    telegram,
		clock:       clock,

		sendInterval: sendInterval,
		log:          log.With("component", "service").With("service", "broadcast"),
		mx:           &sync.Mutex{},
	}
}

// Run performs one broadcast: snapshot subscribers, fetch the digest once and
// send it to every subscriber sequentially.
// Early aborts are reported through Summary.State; the returned error is
// reserved for failures the caller must treat as fatal.
func (b *Broadcast) Run(ctx context.Context) (Summary, error) {
	b.mx.Lock()
	defer b.mx.Unlock()

	res := Summary{StartedAt: b.clock.Now()}
	b.log.InfoContext(ctx, "Starting digest broadcast")

	subs, err := b.subscribers.DigestSubscribers()
	if err != nil {
		return b.finish(res), fmt.Errorf("load digest subscribers: %w", err)
	}
	res.Subscribers = len(subs)
	if len(subs) == 0 {
		return b.abort(ctx, res, ReasonNoSubscribers), nil
	}

	d, err := b.digests.Fetch(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return b.finish(res), fmt.Errorf("fetch digest: %w", err)
		}
		b.log.ErrorContext(ctx, "Failed to fetch digest", "error", err)
		return b.abort(ctx, res, ReasonDigestUnavailable), nil
	}
	res.PostsCount = d.PostsCount

	if isBlank(d.Text) {
		return b.abort(ctx, res, ReasonEmptyDigest), nil
	}

	if err := b.dispatch(ctx, subs, d.Text, &res); err != nil {
		return b.finish(res), err
	}

	res.State = RunCompleted
	res = b.finish(res)
	b.log.InfoContext(ctx, "Digest broadcast completed",
		"state", res.State,
		"sent", res.Sent,
		"failed", res.Failed,
		"postsCount", res.PostsCount,
		"duration", res.FinishedAt.Sub(res.StartedAt))

	return res, nil
}

func (b *Broadcast) dispatch(ctx context.Context, subs []dal.Subscriber, text string, res *Summary) error {
	for i, sub := range subs {
		if i > 0 {
			if err := b.pause(ctx); err != nil {
				return fmt.Errorf("wait before send: %w", err)
			}
		}

		log := b.log.With("chatID", sub.TgID)
		err := b.telegram.SendMessage(ctx, strconv.FormatInt(sub.TgID, 10), text)
		if err == nil {
			res.Sent++
			log.DebugContext(ctx, "Digest sent")
			continue
		}

		res.Failed++
		if errors.Is(err, telegram.ErrForbidden) {
			log.WarnContext(ctx, "Bot blocked by user", "error", err)
			continue
		}
		log.ErrorContext(ctx, "Failed to send digest", "error", err)
	}

	return nil
}

// pause keeps sendInterval between the end of one send and the start of the next.
func (b *Broadcast) pause(ctx context.Context) error {
	if b.sendInterval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(b.sendInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (b *Broadcast) abort(ctx context.Context, res Summary, reason string) Summary {
	res.State = RunAbortedEarly
	res.Reason = reason
	res = b.finish(res)

	b.log.InfoContext(ctx, "Digest broadcast aborted",
		"state", res.State,
		"reason", reason,
		"subscribers", res.Subscribers,
		"postsCount", res.PostsCount)
	return res
}

func (b *Broadcast) finish(res Summary) Summary {
	res.FinishedAt = b.clock.Now()
	return res
}

// isBlank reports whether the digest has no visible text once HTML markup is removed.
func isBlank(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return false
	}
	return strings.TrimSpace(doc.Text()) == ""
}
