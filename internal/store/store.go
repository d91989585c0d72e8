// Package store defines the datastore abstraction for arbitrack.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"encoding/json"
	"time"

	domain "arbitrack/pkg/types"
)

// Store defines all data access operations for arbitrack.
type Store interface {
	// Products
	UpsertProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductByASIN(ctx context.Context, asin string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int, error)
	// ListCandidateProducts returns products that have at least one Amazon
	// offer, optionally restricted to one marketplace ("" means all).
	ListCandidateProducts(ctx context.Context, marketplace string) ([]domain.Product, error)

	// Amazon offers. At most one per (product, marketplace); upsert replaces.
	UpsertAmazonOffer(ctx context.Context, o *domain.AmazonOffer) error
	ListAmazonOffers(ctx context.Context, productID string) ([]domain.AmazonOffer, error)

	// Retail offers
	UpsertRetailOffer(ctx context.Context, o *domain.RetailOffer) error
	ListRetailOffers(ctx context.Context, productID string) ([]domain.RetailOffer, error)
	// BestRetailOffer returns the cheapest available offer (price plus
	// shipping) from an active store, or ErrNotFound when none qualifies.
	BestRetailOffer(ctx context.Context, productID string) (*domain.RetailOffer, error)

	// Retail stores
	CreateStore(ctx context.Context, s *domain.RetailStore) error
	GetStore(ctx context.Context, id string) (*domain.RetailStore, error)
	ListStores(ctx context.Context, activeOnly bool) ([]domain.RetailStore, error)
	UpdateStore(ctx context.Context, s *domain.RetailStore) error
	DeleteStore(ctx context.Context, id string) error
	SetStoreActive(ctx context.Context, id string, active bool) error

	// Scores
	UpsertScore(ctx context.Context, s *domain.Score) error
	GetScore(ctx context.Context, productID, marketplace string) (*domain.Score, error)
	QueryScores(ctx context.Context, q *ScoreQuery) ([]domain.ScoreRow, int, error)

	// Alerts
	CreateAlert(ctx context.Context, a *domain.Alert) error
	GetAlert(ctx context.Context, id string) (*domain.Alert, error)
	ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error)
	UpdateAlert(ctx context.Context, a *domain.Alert) error
	DeleteAlert(ctx context.Context, id string) error
	SetAlertActive(ctx context.Context, id string, active bool) error
	TouchAlertLastRun(ctx context.Context, id string) error

	// Settings
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	PutSetting(ctx context.Context, key string, value json.RawMessage) error
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// Jobs
	EnqueueJob(ctx context.Context, jobType domain.JobType, params json.RawMessage) (*domain.Job, error)
	ClaimJobs(ctx context.Context, workerID string, batchSize int) ([]domain.Job, error)
	CompleteJob(ctx context.Context, id string, result json.RawMessage) error
	FailJob(ctx context.Context, id string, errText string) error
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context, jobType string, limit int) ([]domain.Job, error)
	RecoverStaleJobs(ctx context.Context, olderThan time.Duration) (int, error)

	// WithTx runs fn against a Store bound to a single transaction,
	// committing on nil and rolling back on error.
	WithTx(ctx context.Context, fn func(Store) error) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
