package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type Broadcaster interface {
	Run(ctx context.Context) (Summary, error)
}

// Scheduler runs digest broadcasts inside the bot process on a cron schedule.
type Scheduler struct {
	schedule  cron.Schedule
	spec      string
	loc       *time.Location
	broadcast Broadcaster

	log *slog.Logger
}

func NewScheduler(spec string, loc *time.Location, broadcast Broadcaster, log *slog.Logger) (*Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse digest schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		schedule:  schedule,
		spec:      spec,
		loc:       loc,
		broadcast: broadcast,

		log: log.With("component", "scheduler").With("process", "digest_broadcast"),
	}, nil
}

// Next returns the first activation strictly after now.
func (s *Scheduler) Next(now time.Time) time.Time {
	return s.schedule.Next(now.In(s.loc))
}

// Start blocks until ctx is done. A run that is still in progress when ctx is
// canceled is waited for.
func (s *Scheduler) Start(ctx context.Context) {
	c := cron.New(cron.WithLocation(s.loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		s.runOnce(ctx)
	}))

	s.log.InfoContext(ctx, "Starting scheduler", "schedule", s.spec, "tz", s.loc.String(), "next", s.Next(time.Now()))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.InfoContext(ctx, "Stopped scheduler")
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	summary, err := withRecovery(ctx, s.broadcast.Run, s.log)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.log.InfoContext(ctx, "Broadcast interrupted", "error", err)
			return
		}
		s.log.ErrorContext(ctx, "Failed to run broadcast", "error", err)
		return
	}

	s.log.InfoContext(ctx, "Scheduled broadcast finished", "state", summary.State, "next", s.Next(time.Now()))
}

func withRecovery(ctx context.Context, fn func(context.Context) (Summary, error), log *slog.Logger) (res Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Recovered from panic", "error", r)
			err = fmt.Errorf("broadcast panicked: %v", r)
		}
	}()
	return fn(ctx)
}
