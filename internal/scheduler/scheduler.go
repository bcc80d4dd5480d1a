package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"StockViewer/internal/pipeline"
)

// Sink receives the report of each scheduled run.
type Sink func(pipeline.Report)

// Scheduler re-runs a fixed pipeline request on a cron schedule. Each run is an
// independent pass; nothing is carried over between runs.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *pipeline.Runner
	Sink   Sink
	Ctx    context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *pipeline.Runner, sink Sink) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: runner,
		Sink:   sink,
		Ctx:    ctx,
	}
}

// Register schedules req under a six-field cron spec.
func (s *Scheduler) Register(spec string, req pipeline.Request) error {
	if len(pipeline.CleanSymbols(req.Symbols)) == 0 {
		return fmt.Errorf("register watch task: no symbols")
	}
	if _, err := s.Cron.AddFunc(spec, func() { s.RunNow(req) }); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info("scheduler stopped")
}

// RunNow executes req immediately and hands the report to the sink.
func (s *Scheduler) RunNow(req pipeline.Request) pipeline.Report {
	log.WithField("symbols", req.Symbols).Info("running watch task")
	report := s.Runner.Run(s.Ctx, req)
	log.Infof("watch task done: %d ok, %d failed", len(report.Succeeded()), len(report.Failed()))
	if s.Sink != nil {
		s.Sink(report)
	}
	return report
}
