package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
)

// Scheduler runs the prepare job on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	prepareEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that refreshes the dataset and column
// schemas every prepareInterval.
func NewScheduler(
	eng *Engine,
	prepareInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+prepareInterval.String(), s.runPrepare)
	if err != nil {
		return nil, err
	}
	s.prepareEntryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next scheduled prepare time as a gauge.
func (s *Scheduler) SyncNextRunTimestamp() {
	entry := s.cron.Entry(s.prepareEntryID)
	if !entry.Next.IsZero() {
		metrics.SchedulerNextPrepareTimestamp.Set(float64(entry.Next.Unix()))
	}
}

func (s *Scheduler) runPrepare() {
	ctx := context.Background()
	s.log.Info("scheduled prepare starting")
	if err := s.engine.RunPrepare(ctx); err != nil {
		s.log.Error("scheduled prepare failed", "error", err)
	}
	s.SyncNextRunTimestamp()
}
