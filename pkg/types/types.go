// Package domain defines the core business types for arbitrack.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JobType identifies the kind of work a Job record tracks.
type JobType string

// Job type constants.
const (
	JobRefreshScores JobType = "refresh_scores"
	JobRunAlert      JobType = "run_alert"
)

// JobStatus is the lifecycle state of a Job.
type JobStatus string

// Job status constants. A job moves from pending to running and then to
// exactly one terminal state. Crashed is assigned by stale-run recovery when
// a worker died without completing the job.
const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
	JobCrashed   JobStatus = "crashed"
)

// Product is a catalog item identified by its ASIN. Metadata is overwritten
// on re-observation; products are never deleted by the engine.
type Product struct {
	ID          string    `json:"id"                    db:"id"`
	ASIN        string    `json:"asin"                  db:"asin"`
	Title       string    `json:"title"                 db:"title"`
	Brand       string    `json:"brand,omitempty"       db:"brand"`
	Category    string    `json:"category,omitempty"    db:"category"`
	ImageURL    string    `json:"image_url,omitempty"   db:"image_url"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`
}

// AmazonOffer is the Amazon-side offer for a product on one marketplace.
// At most one row exists per (product, marketplace); re-imports replace it.
type AmazonOffer struct {
	ID           string          `json:"id"            db:"id"`
	ProductID    string          `json:"product_id"    db:"product_id"`
	Marketplace  string          `json:"marketplace"   db:"marketplace"`
	Price        decimal.Decimal `json:"price"         db:"price"`
	ShippingCost decimal.Decimal `json:"shipping_cost" db:"shipping_cost"`
	FBAFee       decimal.Decimal `json:"fba_fee"       db:"fba_fee"`
	ReferralFee  decimal.Decimal `json:"referral_fee"  db:"referral_fee"`
	SellersCount int             `json:"sellers_count" db:"sellers_count"`
	BuyboxStable bool            `json:"buybox_stable" db:"buybox_stable"`
	BSR          *int            `json:"bsr,omitempty" db:"bsr"`
	CreatedAt    time.Time       `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"    db:"updated_at"`
}

// RetailOffer is a retail-side offer for a product at one store.
type RetailOffer struct {
	ID           string          `json:"id"            db:"id"`
	ProductID    string          `json:"product_id"    db:"product_id"`
	StoreID      string          `json:"store_id"      db:"store_id"`
	Price        decimal.Decimal `json:"price"         db:"price"`
	ShippingCost decimal.Decimal `json:"shipping_cost" db:"shipping_cost"`
	Availability bool            `json:"availability"  db:"availability"`
	URL          string          `json:"url,omitempty" db:"url"`
	CreatedAt    time.Time       `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"    db:"updated_at"`
}

// TotalPrice returns price plus shipping.
func (o *RetailOffer) TotalPrice() decimal.Decimal {
	return o.Price.Add(o.ShippingCost)
}

// RetailStore is a retail source. Selectors is the scraper's extraction
// configuration and is opaque to the engine. Inactive stores are neither
// scraped nor scored against.
type RetailStore struct {
	ID        string          `json:"id"         db:"id"`
	Name      string          `json:"name"       db:"name"`
	URL       string          `json:"url"        db:"url"`
	Selectors json.RawMessage `json:"selectors"  db:"selectors"`
	Active    bool            `json:"active"     db:"active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Score is the derived profitability record for one (product, marketplace)
// pair. Upserted wholesale by the scoring engine.
type Score struct {
	ID                string          `json:"id"                   db:"id"`
	ProductID         string          `json:"product_id"           db:"product_id"`
	Marketplace       string          `json:"marketplace"          db:"marketplace"`
	LandedCost        decimal.Decimal `json:"landed_cost"          db:"landed_cost"`
	Margin            decimal.Decimal `json:"margin_eur"           db:"margin_eur"`
	ROIPercent        decimal.Decimal `json:"roi_percent"          db:"roi_percent"`
	BestRetailOfferID string          `json:"best_retail_offer_id" db:"best_retail_offer_id"`
	BestAmazonOfferID string          `json:"best_amazon_offer_id" db:"best_amazon_offer_id"`
	CalculatedAt      time.Time       `json:"calculated_at"        db:"calculated_at"`
}

// ScoreRow is a Product x Score x AmazonOffer row joined on
// (product, marketplace). Returned by score search and alert evaluation.
type ScoreRow struct {
	ProductID    string           `json:"product_id"`
	ASIN         string           `json:"asin"`
	Title        string           `json:"title"`
	Marketplace  string           `json:"marketplace"`
	AmazonPrice  decimal.Decimal  `json:"amazon_price"`
	RetailPrice  *decimal.Decimal `json:"retail_price,omitempty"`
	LandedCost   decimal.Decimal  `json:"landed_cost"`
	Margin       decimal.Decimal  `json:"margin_eur"`
	ROIPercent   decimal.Decimal  `json:"roi_percent"`
	BSR          *int             `json:"bsr,omitempty"`
	SellersCount int              `json:"sellers_count"`
	BuyboxStable bool             `json:"buybox_stable"`
}

// Alert is a named, user-defined filter set evaluated on demand.
type Alert struct {
	ID          string       `json:"id"                    db:"id"`
	Name        string       `json:"name"                  db:"name"`
	Description string       `json:"description,omitempty" db:"description"`
	Filters     AlertFilters `json:"filters"               db:"filters"`
	Active      bool         `json:"active"                db:"active"`
	LastRunAt   *time.Time   `json:"last_run_at,omitempty" db:"last_run_at"`
	CreatedAt   time.Time    `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"            db:"updated_at"`
}

// AlertFilters is the closed predicate set shared by alert evaluation and
// score search. All bounds are inclusive; a nil field means no constraint on
// that dimension. Unknown keys are rejected at decode time so typos never
// silently become no-ops.
type AlertFilters struct {
	ROIMin          *decimal.Decimal `json:"roi_min,omitempty"`
	ROIMax          *decimal.Decimal `json:"roi_max,omitempty"`
	MarginMin       *decimal.Decimal `json:"margin_min,omitempty"`
	MarginMax       *decimal.Decimal `json:"margin_max,omitempty"`
	BSRMax          *int             `json:"bsr_max,omitempty"`
	SellersCountMax *int             `json:"sellers_count_max,omitempty"`
	BuyboxStable    *bool            `json:"buybox_stable,omitempty"`
	Marketplace     *string          `json:"marketplace,omitempty"`
}

// alertFilters avoids UnmarshalJSON recursion.
type alertFilters AlertFilters

// UnmarshalJSON decodes filters strictly, failing on unrecognized keys.
func (f *AlertFilters) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var af alertFilters
	if err := dec.Decode(&af); err != nil {
		return fmt.Errorf("decoding alert filters: %w", err)
	}

	*f = AlertFilters(af)
	return nil
}

// IsZero reports whether no constraint is set.
func (f *AlertFilters) IsZero() bool {
	return f.ROIMin == nil && f.ROIMax == nil &&
		f.MarginMin == nil && f.MarginMax == nil &&
		f.BSRMax == nil && f.SellersCountMax == nil &&
		f.BuyboxStable == nil && f.Marketplace == nil
}

// Match reports whether a joined score row satisfies every set predicate.
func (f *AlertFilters) Match(r *ScoreRow) bool {
	if f.ROIMin != nil && r.ROIPercent.LessThan(*f.ROIMin) {
		return false
	}
	if f.ROIMax != nil && r.ROIPercent.GreaterThan(*f.ROIMax) {
		return false
	}
	if f.MarginMin != nil && r.Margin.LessThan(*f.MarginMin) {
		return false
	}
	if f.MarginMax != nil && r.Margin.GreaterThan(*f.MarginMax) {
		return false
	}
	if f.BSRMax != nil && (r.BSR == nil || *r.BSR > *f.BSRMax) {
		return false
	}
	if f.SellersCountMax != nil && r.SellersCount > *f.SellersCountMax {
		return false
	}
	if f.BuyboxStable != nil && r.BuyboxStable != *f.BuyboxStable {
		return false
	}
	if f.Marketplace != nil && r.Marketplace != *f.Marketplace {
		return false
	}
	return true
}

// Job is the audit record of one asynchronous engine invocation.
type Job struct {
	ID          string          `json:"id"                     db:"id"`
	Type        JobType         `json:"job_type"               db:"job_type"`
	Status      JobStatus       `json:"status"                 db:"status"`
	Params      json.RawMessage `json:"parameters,omitempty"   db:"parameters"`
	Result      json.RawMessage `json:"result,omitempty"       db:"result"`
	Error       string          `json:"error,omitempty"        db:"error_text"`
	StartedAt   *time.Time      `json:"started_at,omitempty"   db:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time       `json:"created_at"             db:"created_at"`
}

// Setting is one key of the configuration KV store. Value is a structured
// JSON document whose shape depends on the key.
type Setting struct {
	Key       string          `json:"key"        db:"key"`
	Value     json.RawMessage `json:"value"      db:"value"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
