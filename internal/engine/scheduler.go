package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"arbitrack/internal/metrics"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// staleJobAge is how long a job may sit in running before recovery marks
// it crashed.
const staleJobAge = 30 * time.Minute

// Scheduler enqueues periodic score refreshes and sweeps up jobs left
// running by dead workers. It only writes to the job queue; the worker
// pool does the actual work.
type Scheduler struct {
	cron  *cron.Cron
	store store.Store
	log   *slog.Logger
}

// NewScheduler creates a Scheduler that enqueues a refresh_scores job every
// refreshInterval and runs stale-job recovery every recoveryInterval.
func NewScheduler(
	s store.Store,
	refreshInterval time.Duration,
	recoveryInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:  c,
		store: s,
		log:   log,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		sched.runRefreshEnqueue,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+recoveryInterval.String(),
		sched.runRecovery,
	); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running tasks to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefreshEnqueue() {
	ctx := context.Background()

	job, err := s.store.EnqueueJob(ctx, domain.JobRefreshScores, json.RawMessage(`{}`))
	if err != nil {
		s.log.Error("scheduled refresh enqueue failed", "error", err)
		return
	}

	metrics.JobsEnqueuedTotal.WithLabelValues(string(domain.JobRefreshScores)).Inc()
	s.log.Info("scheduled refresh enqueued", "job_id", job.ID)
}

func (s *Scheduler) runRecovery() {
	ctx := context.Background()

	n, err := s.store.RecoverStaleJobs(ctx, staleJobAge)
	if err != nil {
		s.log.Error("stale job recovery failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("recovered stale jobs", "count", n)
	}
}
