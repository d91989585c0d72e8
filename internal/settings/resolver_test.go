package settings_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbitrack/internal/settings"
	"arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setting(key, value string) *domain.Setting {
	return &domain.Setting{Key: key, Value: json.RawMessage(value)}
}

func TestSnapshotDefaults(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	r := settings.NewResolver(ms, quietLogger())
	snap, err := r.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.VATRate.Equal(decimal.NewFromFloat(0.20)))
	assert.True(t, snap.PrepCost.IsZero())
	assert.Empty(t, snap.Fees)
}

func TestSnapshotConfigured(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).
		Return(setting(settings.KeyVATRate, `"0.21"`), nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyPrepCost).
		Return(setting(settings.KeyPrepCost, `0.5`), nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyFBAFees).
		Return(setting(settings.KeyFBAFees,
			`{"FR": {"fba_fee": "2.50", "referral_fee": "3.10"}}`), nil)

	r := settings.NewResolver(ms, quietLogger())
	snap, err := r.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.VATRate.Equal(decimal.NewFromFloat(0.21)))
	assert.True(t, snap.PrepCost.Equal(decimal.NewFromFloat(0.5)))

	fr := snap.FeesFor("FR")
	assert.True(t, fr.FBAFee.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, fr.ReferralFee.Equal(decimal.NewFromFloat(3.10)))

	// Marketplaces without an entry contribute zero fees.
	de := snap.FeesFor("DE")
	assert.True(t, de.FBAFee.IsZero())
	assert.True(t, de.ReferralFee.IsZero())
}

func TestSnapshotEnvelopedDocuments(t *testing.T) {
	t.Parallel()

	// Rows seeded outside the API may wrap the value in an envelope.
	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).
		Return(setting(settings.KeyVATRate, `{"value": 0.19}`), nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyPrepCost).
		Return(setting(settings.KeyPrepCost, `{"value": "1.50"}`), nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyFBAFees).
		Return(setting(settings.KeyFBAFees,
			`{"value": {"FR": {"fba_fee": "2.50", "referral_fee": "3.10"}}}`), nil)

	r := settings.NewResolver(ms, quietLogger())
	snap, err := r.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.VATRate.Equal(decimal.NewFromFloat(0.19)))
	assert.True(t, snap.PrepCost.Equal(decimal.NewFromFloat(1.50)))
	assert.True(t, snap.FeesFor("FR").FBAFee.Equal(decimal.NewFromFloat(2.50)))
}

func TestSnapshotMalformedDocumentFallsBack(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).
		Return(setting(settings.KeyVATRate, `{"oops": true}`), nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyPrepCost).
		Return(nil, domain.ErrNotFound)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyFBAFees).
		Return(setting(settings.KeyFBAFees, `["not", "a", "map"]`), nil)

	r := settings.NewResolver(ms, quietLogger())
	snap, err := r.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.VATRate.Equal(settings.DefaultVATRate))
	assert.Empty(t, snap.Fees)
}

func TestSnapshotStoreError(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).
		Return(nil, assert.AnError)

	r := settings.NewResolver(ms, quietLogger())
	_, err := r.Snapshot(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
