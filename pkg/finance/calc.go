// Package finance computes arbitrage profitability: landed cost, margin,
// and ROI. All arithmetic is exact decimal; callers never see binary
// floating point artifacts.
package finance

import "github.com/shopspring/decimal"

// currencyPlaces is the storage precision for monetary amounts.
const currencyPlaces = 2

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Inputs are the price components of one calculation. VATRate is a fraction
// (0.20 for 20%). AmazonPrice nil means the Amazon side is unknown and only
// the landed cost can be computed. Negative values are accepted and flow
// through; validation is the caller's concern.
type Inputs struct {
	RetailPrice    decimal.Decimal
	RetailShipping decimal.Decimal
	VATRate        decimal.Decimal
	PrepCost       decimal.Decimal
	AmazonPrice    *decimal.Decimal
	FBAFee         decimal.Decimal
	ReferralFee    decimal.Decimal
}

// Result holds the computed metrics. LandedCost and Margin are rounded to
// currency precision; ROIPercent keeps the division's full precision and is
// rounded by the storage layer.
type Result struct {
	LandedCost decimal.Decimal
	Margin     decimal.Decimal
	ROIPercent decimal.Decimal
}

// Compute derives landed cost, margin, and ROI from the inputs.
//
//	landed_cost = (retail_price + retail_shipping) * (1 + vat_rate) + prep_cost
//	margin      = amazon_price - fba_fee - referral_fee - landed_cost
//	roi_percent = margin / landed_cost * 100
//
// Without an Amazon price the result is partial: margin and ROI are zero by
// policy, not an error. A zero or negative landed cost forces ROI to zero
// instead of dividing.
func Compute(in Inputs) Result {
	landed := in.RetailPrice.Add(in.RetailShipping).
		Mul(one.Add(in.VATRate)).
		Add(in.PrepCost).
		Round(currencyPlaces)

	if in.AmazonPrice == nil {
		return Result{
			LandedCost: landed,
			Margin:     decimal.Zero,
			ROIPercent: decimal.Zero,
		}
	}

	margin := in.AmazonPrice.
		Sub(in.FBAFee).
		Sub(in.ReferralFee).
		Sub(landed).
		Round(currencyPlaces)

	roi := decimal.Zero
	if landed.IsPositive() {
		roi = margin.Div(landed).Mul(hundred)
	}

	return Result{
		LandedCost: landed,
		Margin:     margin,
		ROIPercent: roi,
	}
}
