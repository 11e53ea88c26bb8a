// Command digest performs a single digest broadcast and exits. It is meant to
// be started by an external scheduler such as cron or a systemd timer.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/config"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/digest"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/service"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/telegram"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/pkg/clock"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	log := mustLogger(conf.Dev)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered from panic", "error", fmt.Sprint(r))
			code = 1
		}
	}()

	store, err := dal.Open(conf.StoreDriver, conf.StorePath, log)
	if err != nil {
		log.Error("Failed to open subscriber store", "error", err)
		return 1
	}

	c := clock.NewWithLocation(conf.Location())
	broadcast := service.NewBroadcast(
		store,
		digest.NewClient(conf.APIURL, conf.APITimeout, log),
		tc.NewClient(telegram.NewHTMLClient(http.DefaultTransport), conf.TelegramToken),
		c,
		conf.SendInterval,
		log,
	)

	log.Info("Starting digest run", "startedAt", c.Now())
	summary, err := broadcast.Run(ctx)
	if err != nil {
		log.Error("Digest run failed", "error", err, "sent", summary.Sent, "failed", summary.Failed)
		return 1
	}

	log.Info("Digest run finished",
		"state", summary.State,
		"reason", summary.Reason,
		"sent", summary.Sent,
		"failed", summary.Failed,
		"postsCount", summary.PostsCount)
	return 0
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
