package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/config"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/digest"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/service"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/telegram"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/pkg/clock"
)

type starter interface {
	Start(ctx context.Context) error
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	log := mustLogger(conf.Dev)

	store, err := dal.Open(conf.StoreDriver, conf.StorePath, log)
	if err != nil {
		log.Error("Failed to open subscriber store", "error", err)
		return 1
	}

	subscriptionsSvc := service.NewSubscriptions(store, log)
	handler := telegram.NewHandler(subscriptionsSvc, telegram.Texts{
		DigestTime:  conf.DigestTime,
		WebAppURL:   conf.WebAppURL,
		BotUsername: conf.BotUsername,
	}, log)

	bot, err := telegram.NewBot(conf.TelegramToken, handler, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		return 1
	}

	var jobs []func(context.Context)
	if conf.DigestSchedule != "" {
		broadcast := service.NewBroadcast(
			store,
			digest.NewClient(conf.APIURL, conf.APITimeout, log),
			tc.NewClient(telegram.NewHTMLClient(http.DefaultTransport), conf.TelegramToken),
			clock.NewWithLocation(conf.Location()),
			conf.SendInterval,
			log,
		)
		scheduler, err := service.NewScheduler(conf.DigestSchedule, conf.Location(), broadcast, log)
		if err != nil {
			log.Error("Failed to create digest scheduler", "error", err)
			return 1
		}
		jobs = append(jobs, scheduler.Start)
	}

	log.Info("Starting bot", "storeDriver", conf.StoreDriver, "storePath", conf.StorePath)
	return serve(ctx, bot, log, jobs...)
}

// serve runs the bot until it stops and the background jobs until the bot is
// done. A bot failure other than cancellation makes the process exit with 1.
func serve(ctx context.Context, bot starter, log *slog.Logger, jobs ...func(context.Context)) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg := &sync.WaitGroup{}
	for _, job := range jobs {
		wg.Go(func() {
			job(ctx)
		})
	}

	err := bot.Start(ctx)
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Bot stopped with error", "error", err)
		return 1
	}

	log.Info("Stopped bot")
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
