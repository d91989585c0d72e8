// Package settings resolves runtime configuration from the settings KV
// store, applying documented defaults when keys are missing or malformed.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// Settings keys.
const (
	KeyVATRate  = "vat_rate"
	KeyPrepCost = "prep_cost"
	KeyFBAFees  = "fba_fees"
)

// DefaultVATRate applies when no vat_rate setting exists.
var DefaultVATRate = decimal.NewFromFloat(0.20)

// MarketplaceFees is one marketplace's entry in the fba_fees document.
type MarketplaceFees struct {
	FBAFee      decimal.Decimal `json:"fba_fee"`
	ReferralFee decimal.Decimal `json:"referral_fee"`
}

// Snapshot is one consistent read of the calculation settings. The scoring
// engine takes a single snapshot per run so every product in a batch is
// scored under the same configuration.
type Snapshot struct {
	VATRate  decimal.Decimal
	PrepCost decimal.Decimal
	Fees     map[string]MarketplaceFees
}

// FeesFor returns the fee entry for a marketplace. A marketplace absent
// from the document contributes zero fees.
func (s *Snapshot) FeesFor(marketplace string) MarketplaceFees {
	return s.Fees[marketplace]
}

// Resolver reads settings documents and falls back to defaults.
type Resolver struct {
	store  store.Store
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(st store.Store, logger *slog.Logger) *Resolver {
	return &Resolver{store: st, logger: logger}
}

// Snapshot resolves vat_rate, prep_cost, and fba_fees in one pass.
// Missing keys take their defaults (0.20, 0, empty). A document that fails
// to decode is logged and treated as missing rather than aborting the
// caller's run. Store errors other than not-found propagate.
func (r *Resolver) Snapshot(ctx context.Context) (*Snapshot, error) {
	vat, err := r.decimalSetting(ctx, KeyVATRate, DefaultVATRate)
	if err != nil {
		return nil, err
	}

	prep, err := r.decimalSetting(ctx, KeyPrepCost, decimal.Zero)
	if err != nil {
		return nil, err
	}

	fees, err := r.feesSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{VATRate: vat, PrepCost: prep, Fees: fees}, nil
}

// raw fetches one settings document, reporting absence as a nil value.
// A document wrapped in a {"value": ...} envelope is unwrapped; the API
// stores bare values but externally seeded rows may carry the envelope.
func (r *Resolver) raw(ctx context.Context, key string) (json.RawMessage, error) {
	setting, err := r.store.GetSetting(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return unwrapValue(setting.Value), nil
}

// unwrapValue strips a {"value": ...} envelope, passing every other
// document shape through untouched.
func unwrapValue(raw json.RawMessage) json.RawMessage {
	var env struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Value != nil {
		return env.Value
	}
	return raw
}

func (r *Resolver) decimalSetting(ctx context.Context, key string, def decimal.Decimal) (decimal.Decimal, error) {
	value, err := r.raw(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	if value == nil {
		return def, nil
	}

	// Accepts both JSON numbers and quoted decimal strings.
	var d decimal.Decimal
	if err := json.Unmarshal(value, &d); err != nil {
		r.logger.Warn("malformed settings document, using default",
			"key", key, "error", err)
		return def, nil
	}
	return d, nil
}

func (r *Resolver) feesSetting(ctx context.Context) (map[string]MarketplaceFees, error) {
	value, err := r.raw(ctx, KeyFBAFees)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return map[string]MarketplaceFees{}, nil
	}

	var fees map[string]MarketplaceFees
	if err := json.Unmarshal(value, &fees); err != nil {
		r.logger.Warn("malformed settings document, using default",
			"key", KeyFBAFees, "error", err)
		return map[string]MarketplaceFees{}, nil
	}
	if fees == nil {
		fees = map[string]MarketplaceFees{}
	}
	return fees, nil
}
