package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "arbitrack/pkg/types"
)

const defaultPoolSize = 10

// querier is the subset of pgx operations shared by *pgxpool.Pool and
// pgx.Tx, letting every query method run either pooled or transactional.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	db   querier
	pool *pgxpool.Pool // nil when bound to a transaction
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{db: pool, pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.pool != nil {
		return s.pool.Ping(ctx)
	}
	_, err := s.db.Exec(ctx, "SELECT 1")
	return err
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("migrate inside transaction not supported")
	}
	return RunMigrations(ctx, s.pool)
}

// WithTx runs fn against a transaction-bound copy of the store. A nil
// return commits; any error rolls back. Nested calls reuse the open
// transaction.
func (s *PostgresStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.pool == nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&PostgresStore{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// UpsertProduct inserts or updates a product by ASIN.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	args := pgx.NamedArgs{
		"asin":        p.ASIN,
		"title":       p.Title,
		"brand":       p.Brand,
		"category":    p.Category,
		"image_url":   p.ImageURL,
		"description": p.Description,
	}

	return s.db.QueryRow(ctx, queryUpsertProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProduct retrieves a product by its internal UUID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.db.QueryRow(ctx, queryGetProduct, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProductByASIN retrieves a product by its ASIN.
func (s *PostgresStore) GetProductByASIN(ctx context.Context, asin string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.db.QueryRow(ctx, queryGetProductByASIN, asin), p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts returns a page of products plus the total count.
func (s *PostgresStore) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset = max(offset, 0)

	var total int
	if err := s.db.QueryRow(ctx, queryCountProducts).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	rows, err := s.db.Query(ctx, queryListProducts, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListCandidateProducts returns products that have at least one Amazon offer.
func (s *PostgresStore) ListCandidateProducts(ctx context.Context, marketplace string) ([]domain.Product, error) {
	rows, err := s.db.Query(ctx, queryListCandidateProducts, marketplace)
	if err != nil {
		return nil, fmt.Errorf("querying candidate products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// UpsertAmazonOffer inserts or replaces the Amazon offer for a
// (product, marketplace) pair.
func (s *PostgresStore) UpsertAmazonOffer(ctx context.Context, o *domain.AmazonOffer) error {
	args := pgx.NamedArgs{
		"product_id":    o.ProductID,
		"marketplace":   o.Marketplace,
		"price":         o.Price,
		"shipping_cost": o.ShippingCost,
		"fba_fee":       o.FBAFee,
		"referral_fee":  o.ReferralFee,
		"sellers_count": o.SellersCount,
		"buybox_stable": o.BuyboxStable,
		"bsr":           o.BSR,
	}

	return s.db.QueryRow(ctx, queryUpsertAmazonOffer, args).Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt,
	)
}

// ListAmazonOffers returns all Amazon offers for a product.
func (s *PostgresStore) ListAmazonOffers(ctx context.Context, productID string) ([]domain.AmazonOffer, error) {
	rows, err := s.db.Query(ctx, queryListAmazonOffers, productID)
	if err != nil {
		return nil, fmt.Errorf("querying amazon offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.AmazonOffer
	for rows.Next() {
		var o domain.AmazonOffer
		if err := rows.Scan(
			&o.ID, &o.ProductID, &o.Marketplace, &o.Price, &o.ShippingCost,
			&o.FBAFee, &o.ReferralFee, &o.SellersCount, &o.BuyboxStable,
			&o.BSR, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning amazon offer: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// UpsertRetailOffer inserts or replaces the retail offer for a
// (product, store) pair.
func (s *PostgresStore) UpsertRetailOffer(ctx context.Context, o *domain.RetailOffer) error {
	args := pgx.NamedArgs{
		"product_id":    o.ProductID,
		"store_id":      o.StoreID,
		"price":         o.Price,
		"shipping_cost": o.ShippingCost,
		"availability":  o.Availability,
		"url":           o.URL,
	}

	return s.db.QueryRow(ctx, queryUpsertRetailOffer, args).Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt,
	)
}

// ListRetailOffers returns all retail offers for a product, cheapest first.
func (s *PostgresStore) ListRetailOffers(ctx context.Context, productID string) ([]domain.RetailOffer, error) {
	rows, err := s.db.Query(ctx, queryListRetailOffers, productID)
	if err != nil {
		return nil, fmt.Errorf("querying retail offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.RetailOffer
	for rows.Next() {
		var o domain.RetailOffer
		if err := scanRetailOffer(rows, &o); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// BestRetailOffer returns the cheapest available offer from an active store.
func (s *PostgresStore) BestRetailOffer(ctx context.Context, productID string) (*domain.RetailOffer, error) {
	o := &domain.RetailOffer{}
	if err := scanRetailOffer(s.db.QueryRow(ctx, queryBestRetailOffer, productID), o); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateStore inserts a new retail store.
func (s *PostgresStore) CreateStore(ctx context.Context, st *domain.RetailStore) error {
	return s.db.QueryRow(ctx, queryCreateStore,
		st.Name, st.URL, st.Selectors, st.Active,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

// GetStore retrieves a retail store by ID.
func (s *PostgresStore) GetStore(ctx context.Context, id string) (*domain.RetailStore, error) {
	st := &domain.RetailStore{}
	err := s.db.QueryRow(ctx, queryGetStore, id).Scan(
		&st.ID, &st.Name, &st.URL, &st.Selectors, &st.Active,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return st, nil
}

// ListStores returns retail stores, optionally only active ones.
func (s *PostgresStore) ListStores(ctx context.Context, activeOnly bool) ([]domain.RetailStore, error) {
	rows, err := s.db.Query(ctx, queryListStores, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.RetailStore
	for rows.Next() {
		var st domain.RetailStore
		if err := rows.Scan(
			&st.ID, &st.Name, &st.URL, &st.Selectors, &st.Active,
			&st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, st)
	}
	return stores, rows.Err()
}

// UpdateStore replaces a store's mutable fields.
func (s *PostgresStore) UpdateStore(ctx context.Context, st *domain.RetailStore) error {
	err := s.db.QueryRow(ctx, queryUpdateStore,
		st.ID, st.Name, st.URL, st.Selectors, st.Active,
	).Scan(&st.UpdatedAt)
	return mapErr(err)
}

// DeleteStore removes a store and, via cascade, its retail offers.
func (s *PostgresStore) DeleteStore(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, queryDeleteStore, id)
}

// SetStoreActive toggles a store's active flag.
func (s *PostgresStore) SetStoreActive(ctx context.Context, id string, active bool) error {
	return s.execAffectingOne(ctx, querySetStoreActive, id, active)
}

// UpsertScore inserts or replaces the score for a (product, marketplace)
// pair.
func (s *PostgresStore) UpsertScore(ctx context.Context, sc *domain.Score) error {
	args := pgx.NamedArgs{
		"product_id":           sc.ProductID,
		"marketplace":          sc.Marketplace,
		"landed_cost":          sc.LandedCost,
		"margin_eur":           sc.Margin,
		"roi_percent":          sc.ROIPercent,
		"best_retail_offer_id": sc.BestRetailOfferID,
		"best_amazon_offer_id": sc.BestAmazonOfferID,
	}

	return s.db.QueryRow(ctx, queryUpsertScore, args).Scan(&sc.ID, &sc.CalculatedAt)
}

// GetScore retrieves the score for a (product, marketplace) pair.
func (s *PostgresStore) GetScore(ctx context.Context, productID, marketplace string) (*domain.Score, error) {
	sc := &domain.Score{}
	err := s.db.QueryRow(ctx, queryGetScore, productID, marketplace).Scan(
		&sc.ID, &sc.ProductID, &sc.Marketplace, &sc.LandedCost, &sc.Margin,
		&sc.ROIPercent, &sc.BestRetailOfferID, &sc.BestAmazonOfferID,
		&sc.CalculatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return sc, nil
}

// QueryScores runs a filtered score search, returning joined rows and the
// total match count.
func (s *PostgresStore) QueryScores(ctx context.Context, q *ScoreQuery) ([]domain.ScoreRow, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting scores: %w", err)
	}

	rows, err := s.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying scores: %w", err)
	}
	defer rows.Close()

	var results []domain.ScoreRow
	for rows.Next() {
		var (
			r      domain.ScoreRow
			retail decimal.NullDecimal
		)
		if err := rows.Scan(
			&r.ProductID, &r.ASIN, &r.Title, &r.Marketplace,
			&r.AmazonPrice, &retail,
			&r.LandedCost, &r.Margin, &r.ROIPercent,
			&r.BSR, &r.SellersCount, &r.BuyboxStable,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning score row: %w", err)
		}
		if retail.Valid {
			r.RetailPrice = &retail.Decimal
		}
		results = append(results, r)
	}
	return results, total, rows.Err()
}

// CreateAlert inserts a new alert.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	filters, err := json.Marshal(a.Filters)
	if err != nil {
		return fmt.Errorf("encoding filters: %w", err)
	}

	return s.db.QueryRow(ctx, queryCreateAlert,
		a.Name, a.Description, filters, a.Active,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetAlert retrieves an alert by ID.
func (s *PostgresStore) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	a := &domain.Alert{}
	err := s.db.QueryRow(ctx, queryGetAlert, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.Filters, &a.Active,
		&a.LastRunAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return a, nil
}

// ListAlerts returns alerts, optionally only active ones.
func (s *PostgresStore) ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error) {
	rows, err := s.db.Query(ctx, queryListAlerts, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.Filters, &a.Active,
			&a.LastRunAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// UpdateAlert replaces an alert's mutable fields.
func (s *PostgresStore) UpdateAlert(ctx context.Context, a *domain.Alert) error {
	filters, err := json.Marshal(a.Filters)
	if err != nil {
		return fmt.Errorf("encoding filters: %w", err)
	}

	err = s.db.QueryRow(ctx, queryUpdateAlert,
		a.ID, a.Name, a.Description, filters, a.Active,
	).Scan(&a.UpdatedAt)
	return mapErr(err)
}

// DeleteAlert removes an alert.
func (s *PostgresStore) DeleteAlert(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, queryDeleteAlert, id)
}

// SetAlertActive toggles an alert's active flag.
func (s *PostgresStore) SetAlertActive(ctx context.Context, id string, active bool) error {
	return s.execAffectingOne(ctx, querySetAlertActive, id, active)
}

// TouchAlertLastRun records that an alert evaluation ran now.
func (s *PostgresStore) TouchAlertLastRun(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, queryTouchAlertLastRun, id)
}

// GetSetting retrieves one settings document by key.
func (s *PostgresStore) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	st := &domain.Setting{}
	err := s.db.QueryRow(ctx, queryGetSetting, key).Scan(
		&st.Key, &st.Value, &st.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return st, nil
}

// PutSetting inserts or replaces one settings document.
func (s *PostgresStore) PutSetting(ctx context.Context, key string, value json.RawMessage) error {
	_, err := s.db.Exec(ctx, queryPutSetting, key, value)
	return err
}

// ListSettings returns every settings document.
func (s *PostgresStore) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := s.db.Query(ctx, queryListSettings)
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var st domain.Setting
		if err := rows.Scan(&st.Key, &st.Value, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings = append(settings, st)
	}
	return settings, rows.Err()
}

// EnqueueJob records a new pending job.
func (s *PostgresStore) EnqueueJob(ctx context.Context, jobType domain.JobType, params json.RawMessage) (*domain.Job, error) {
	j := &domain.Job{Type: jobType, Params: params}
	err := s.db.QueryRow(ctx, queryEnqueueJob, string(jobType), params).Scan(
		&j.ID, &j.Status, &j.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("enqueueing job: %w", err)
	}
	return j, nil
}

// ClaimJobs atomically claims up to batchSize pending jobs for a worker,
// transitioning them to running.
func (s *PostgresStore) ClaimJobs(ctx context.Context, workerID string, batchSize int) ([]domain.Job, error) {
	rows, err := s.db.Query(ctx, queryClaimJobs, workerID, batchSize)
	if err != nil {
		return nil, fmt.Errorf("claiming jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// CompleteJob marks a running job completed with its result payload.
func (s *PostgresStore) CompleteJob(ctx context.Context, id string, result json.RawMessage) error {
	return s.execAffectingOne(ctx, queryCompleteJob, id, result)
}

// FailJob marks a running job failed with an error message.
func (s *PostgresStore) FailJob(ctx context.Context, id string, errText string) error {
	return s.execAffectingOne(ctx, queryFailJob, id, errText)
}

// GetJob retrieves a job by ID.
func (s *PostgresStore) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	j := &domain.Job{}
	err := s.db.QueryRow(ctx, queryGetJob, id).Scan(
		&j.ID, &j.Type, &j.Status, &j.Params, &j.Result, &j.Error,
		&j.StartedAt, &j.CompletedAt, &j.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return j, nil
}

// ListJobs returns recent jobs, newest first, optionally filtered by type.
func (s *PostgresStore) ListJobs(ctx context.Context, jobType string, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.Query(ctx, queryListJobs, jobType, limit)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// RecoverStaleJobs marks running jobs older than the threshold as crashed
// and returns how many were recovered.
func (s *PostgresStore) RecoverStaleJobs(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	tag, err := s.db.Exec(ctx, queryRecoverStaleJobs, cutoff)
	if err != nil {
		return 0, fmt.Errorf("recovering stale jobs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// execAffectingOne runs a statement that must touch exactly one row,
// returning ErrNotFound when it touched none.
func (s *PostgresStore) execAffectingOne(ctx context.Context, sql string, args ...any) error {
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable, p *domain.Product) error {
	err := row.Scan(
		&p.ID, &p.ASIN, &p.Title, &p.Brand, &p.Category,
		&p.ImageURL, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	return mapErr(err)
}

func scanRetailOffer(row scannable, o *domain.RetailOffer) error {
	err := row.Scan(
		&o.ID, &o.ProductID, &o.StoreID, &o.Price, &o.ShippingCost,
		&o.Availability, &o.URL, &o.CreatedAt, &o.UpdatedAt,
	)
	return mapErr(err)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.Type, &j.Status, &j.Params, &j.Result, &j.Error,
			&j.StartedAt, &j.CompletedAt, &j.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// mapErr translates driver-level sentinel errors to domain errors.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
