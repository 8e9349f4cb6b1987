// Package jobs runs the periodic maintenance of the visitor store.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Nightly fires at 12:00 AM every day. The parser takes a seconds field.
const Nightly = "0 0 0 * * *"

// VisitorPruner deletes visitor records older than a cutoff.
type VisitorPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleanup removes visitor records that have outlived the retention period.
type Cleanup struct {
	visitors  VisitorPruner
	retention time.Duration
	now       func() time.Time
}

func NewCleanup(visitors VisitorPruner, retention time.Duration) *Cleanup {
	return &Cleanup{visitors: visitors, retention: retention, now: time.Now}
}

// Run deletes everything older than now minus the retention and reports how
// many rows went.
func (c *Cleanup) Run(ctx context.Context) (int64, error) {
	cutoff := c.now().Add(-c.retention)
	n, err := c.visitors.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("visitor cleanup: %w", err)
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, cutoff.Format(time.DateOnly))
	}
	return n, nil
}

type Scheduler struct {
	cron    *cron.Cron
	cleanup *Cleanup
	timeout time.Duration
}

func NewScheduler(cleanup *Cleanup) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		cleanup: cleanup,
		timeout: time.Minute,
	}
}

// Start registers the cleanup on schedule and starts the cron loop.
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.runCleanup); err != nil {
		return fmt.Errorf("failed to create cron job: %w", err)
	}

	log.Printf("Cron scheduler started (visitor cleanup %q)", schedule)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		log.Println("Cron scheduler stop timed out")
	}
}

// Entries exposes the scheduled jobs.
func (s *Scheduler) Entries() []cron.Entry { return s.cron.Entries() }

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.cleanup.Run(ctx); err != nil {
		log.Printf("Nightly job failed: %v", err)
	}
}
