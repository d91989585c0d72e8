// Package worker runs the durable job queue: it claims pending jobs from
// the store and dispatches them to the engine on a bounded worker pool.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"arbitrack/internal/engine"
	"arbitrack/internal/metrics"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

const (
	defaultWorkers      = 2
	defaultBatchSize    = 5
	defaultPollInterval = 2 * time.Second
)

// Dispatcher claims pending jobs and executes them. Claims use SKIP LOCKED
// at the store level, so several dispatcher processes can share one queue.
type Dispatcher struct {
	store  store.Store
	engine *engine.Engine
	log    *slog.Logger

	id           string
	workers      int
	batchSize    int
	pollInterval time.Duration
	limiter      *rate.Limiter
}

// NewDispatcher creates a Dispatcher with a generated worker identity.
func NewDispatcher(s store.Store, eng *engine.Engine, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:        s,
		engine:       eng,
		log:          slog.Default(),
		id:           "worker-" + uuid.NewString(),
		workers:      defaultWorkers,
		batchSize:    defaultBatchSize,
		pollInterval: defaultPollInterval,
		limiter:      rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithPollInterval sets how often the queue is polled when idle.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Dispatcher) {
		if interval > 0 {
			d.pollInterval = interval
		}
	}
}

// WithRateLimit caps job executions per second across the pool.
func WithRateLimit(perSecond float64) Option {
	return func(d *Dispatcher) {
		if perSecond > 0 {
			d.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// Run polls and executes jobs until the context is canceled. It always
// returns the context's error.
func (d *Dispatcher) Run(ctx context.Context) error {
	jobs := make(chan domain.Job)

	var wg sync.WaitGroup
	for i := range d.workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			d.workerLoop(ctx, n, jobs)
		}(i)
	}

	d.log.Info("dispatcher started",
		"worker_id", d.id, "workers", d.workers, "poll_interval", d.pollInterval)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

poll:
	for {
		claimed, err := d.store.ClaimJobs(ctx, d.id, d.batchSize)
		if err != nil {
			if ctx.Err() != nil {
				break poll
			}
			d.log.Error("claiming jobs failed", "error", err)
		}

		for i := range claimed {
			select {
			case jobs <- claimed[i]:
			case <-ctx.Done():
				break poll
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			break poll
		}
	}

	close(jobs)
	wg.Wait()
	d.log.Info("dispatcher stopped", "worker_id", d.id)
	return ctx.Err()
}

func (d *Dispatcher) workerLoop(ctx context.Context, n int, jobs <-chan domain.Job) {
	log := d.log.With("worker", n)
	for job := range jobs {
		if err := d.limiter.Wait(ctx); err != nil {
			return
		}
		log.Debug("executing job", "job_id", job.ID, "type", job.Type)
		d.execute(ctx, &job)
	}
}

// execute runs one claimed job and records its terminal state. The state
// write uses a detached context so a shutdown mid-job still lands the
// result; jobs interrupted before that are swept up by stale recovery.
func (d *Dispatcher) execute(ctx context.Context, job *domain.Job) {
	start := time.Now()
	result, err := d.dispatch(ctx, job)
	metrics.JobDuration.WithLabelValues(string(job.Type)).Observe(time.Since(start).Seconds())

	writeCtx := context.WithoutCancel(ctx)

	if err != nil {
		metrics.JobsCompletedTotal.WithLabelValues(string(job.Type), string(domain.JobFailed)).Inc()
		d.log.Error("job failed", "job_id", job.ID, "type", job.Type, "error", err)
		if ferr := d.store.FailJob(writeCtx, job.ID, err.Error()); ferr != nil {
			d.log.Error("recording job failure failed", "job_id", job.ID, "error", ferr)
		}
		return
	}

	payload, merr := json.Marshal(result)
	if merr != nil {
		payload = nil
	}

	metrics.JobsCompletedTotal.WithLabelValues(string(job.Type), string(domain.JobCompleted)).Inc()
	d.log.Info("job completed", "job_id", job.ID, "type", job.Type, "duration", time.Since(start))
	if cerr := d.store.CompleteJob(writeCtx, job.ID, payload); cerr != nil {
		d.log.Error("recording job completion failed", "job_id", job.ID, "error", cerr)
	}
}

// dispatch routes a job to its engine operation by type.
func (d *Dispatcher) dispatch(ctx context.Context, job *domain.Job) (any, error) {
	switch job.Type {
	case domain.JobRefreshScores:
		var params engine.RefreshParams
		if len(job.Params) > 0 {
			if err := json.Unmarshal(job.Params, &params); err != nil {
				return nil, fmt.Errorf("decoding refresh params: %w", err)
			}
		}
		return d.engine.RefreshScores(ctx, params.Marketplace)

	case domain.JobRunAlert:
		var params engine.AlertParams
		if err := json.Unmarshal(job.Params, &params); err != nil {
			return nil, fmt.Errorf("decoding alert params: %w", err)
		}
		if params.AlertID == "" {
			return nil, fmt.Errorf("alert job %s has no alert_id", job.ID)
		}
		return d.engine.EvaluateAlert(ctx, params.AlertID)

	default:
		return nil, fmt.Errorf("unknown job type %q", job.Type)
	}
}
