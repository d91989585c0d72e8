// Package engine implements the core business logic: score refreshing and
// alert evaluation, plus the scheduler that keeps them running.
package engine

import (
	"log/slog"

	"arbitrack/internal/notify"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// Engine orchestrates scoring and alert evaluation over the store.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger

	// transactional makes a refresh run all-or-nothing instead of the
	// default commit-per-score behavior.
	transactional bool
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, n notify.Notifier, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:    s,
		notifier: n,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTransactional wraps each refresh run in a single transaction.
func WithTransactional(enabled bool) EngineOption {
	return func(e *Engine) {
		e.transactional = enabled
	}
}

// RefreshParams is the parameter payload of a refresh_scores job.
type RefreshParams struct {
	Marketplace string `json:"marketplace,omitempty"`
}

// RefreshResult is the result payload of a refresh_scores job.
type RefreshResult struct {
	ScoresUpdated int    `json:"scores_updated"`
	ProductsSeen  int    `json:"products_seen"`
	Marketplace   string `json:"marketplace,omitempty"`
}

// AlertParams is the parameter payload of a run_alert job.
type AlertParams struct {
	AlertID string `json:"alert_id"`
}

// AlertResult is the result payload of a run_alert job.
type AlertResult struct {
	AlertID       string            `json:"alert_id"`
	AlertName     string            `json:"alert_name"`
	ProductsCount int               `json:"products_count"`
	Products      []domain.ScoreRow `json:"products"`
}
