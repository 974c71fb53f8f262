package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = 15 * time.Minute

// RunFunc performs one aggregation run.
type RunFunc func(ctx context.Context)

// Scheduler triggers aggregation runs on a cron spec, in UTC.
type Scheduler struct {
	ctx  context.Context
	cron *cron.Cron
	spec string
	run  RunFunc
}

func New(ctx context.Context, spec string, run RunFunc) *Scheduler {
	return &Scheduler{
		ctx:  ctx,
		cron: cron.New(cron.WithLocation(time.UTC)),
		spec: spec,
		run:  run,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("Scheduler started", "spec", s.spec)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(s.ctx, runTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		slog.Info("Scheduler context is done", "error", ctx.Err())
		return
	default:
	}

	s.run(ctx)
}
