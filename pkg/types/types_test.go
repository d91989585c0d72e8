package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decP(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intP(n int) *int { return &n }

func boolP(b bool) *bool { return &b }

func strP(s string) *string { return &s }

func TestAlertFilters_UnmarshalKnownKeys(t *testing.T) {
	t.Parallel()

	var f AlertFilters
	err := json.Unmarshal([]byte(`{
		"roi_min": 20,
		"margin_max": 15.5,
		"bsr_max": 50000,
		"sellers_count_max": 10,
		"buybox_stable": true,
		"marketplace": "FR"
	}`), &f)
	require.NoError(t, err)

	require.NotNil(t, f.ROIMin)
	assert.True(t, f.ROIMin.Equal(dec("20")))
	require.NotNil(t, f.MarginMax)
	assert.True(t, f.MarginMax.Equal(dec("15.5")))
	assert.Equal(t, 50000, *f.BSRMax)
	assert.Equal(t, 10, *f.SellersCountMax)
	assert.True(t, *f.BuyboxStable)
	assert.Equal(t, "FR", *f.Marketplace)
	assert.Nil(t, f.ROIMax)
	assert.Nil(t, f.MarginMin)
}

func TestAlertFilters_UnmarshalRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	var f AlertFilters
	err := json.Unmarshal([]byte(`{"roi_minimum": 20}`), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestAlertFilters_IsZero(t *testing.T) {
	t.Parallel()

	var f AlertFilters
	assert.True(t, f.IsZero())

	f.Marketplace = strP("DE")
	assert.False(t, f.IsZero())
}

func TestAlertFilters_Match(t *testing.T) {
	t.Parallel()

	row := &ScoreRow{
		Marketplace:  "FR",
		ROIPercent:   dec("25.00"),
		Margin:       dec("8.40"),
		BSR:          intP(12000),
		SellersCount: 4,
		BuyboxStable: true,
	}

	tests := []struct {
		name    string
		filters AlertFilters
		want    bool
	}{
		{"empty matches everything", AlertFilters{}, true},
		{"roi_min inclusive", AlertFilters{ROIMin: decP("25")}, true},
		{"roi_min above", AlertFilters{ROIMin: decP("25.01")}, false},
		{"roi_max inclusive", AlertFilters{ROIMax: decP("25")}, true},
		{"margin range", AlertFilters{MarginMin: decP("5"), MarginMax: decP("10")}, true},
		{"margin below min", AlertFilters{MarginMin: decP("8.41")}, false},
		{"bsr_max inclusive", AlertFilters{BSRMax: intP(12000)}, true},
		{"bsr_max exceeded", AlertFilters{BSRMax: intP(11999)}, false},
		{"sellers_count_max", AlertFilters{SellersCountMax: intP(4)}, true},
		{"sellers_count_max exceeded", AlertFilters{SellersCountMax: intP(3)}, false},
		{"buybox_stable match", AlertFilters{BuyboxStable: boolP(true)}, true},
		{"buybox_stable mismatch", AlertFilters{BuyboxStable: boolP(false)}, false},
		{"marketplace match", AlertFilters{Marketplace: strP("FR")}, true},
		{"marketplace mismatch", AlertFilters{Marketplace: strP("DE")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filters.Match(row))
		})
	}
}

func TestAlertFilters_MatchUnknownBSR(t *testing.T) {
	t.Parallel()

	// A row with no BSR never satisfies a bsr_max bound.
	row := &ScoreRow{Marketplace: "FR", ROIPercent: dec("30")}
	f := AlertFilters{BSRMax: intP(100000)}
	assert.False(t, f.Match(row))
}

func TestRetailOffer_TotalPrice(t *testing.T) {
	t.Parallel()

	o := &RetailOffer{Price: dec("9.99"), ShippingCost: dec("2.01")}
	assert.True(t, o.TotalPrice().Equal(dec("12.00")))
}
