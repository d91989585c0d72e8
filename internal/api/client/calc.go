package client

import (
	"context"

	"github.com/shopspring/decimal"
)

// CalcRequest is the payload for an ad hoc profitability calculation.
type CalcRequest struct {
	RetailPrice    decimal.Decimal  `json:"retail_price"`
	RetailShipping decimal.Decimal  `json:"retail_shipping,omitempty"`
	AmazonPrice    *decimal.Decimal `json:"amazon_price,omitempty"`
	Marketplace    string           `json:"marketplace,omitempty"`
	VATRate        *decimal.Decimal `json:"vat_rate,omitempty"`
	PrepCost       *decimal.Decimal `json:"prep_cost,omitempty"`
	FBAFee         *decimal.Decimal `json:"fba_fee,omitempty"`
	ReferralFee    *decimal.Decimal `json:"referral_fee,omitempty"`
}

// CalcResult is the computed profitability for a hypothetical purchase.
type CalcResult struct {
	LandedCost decimal.Decimal `json:"landed_cost"`
	Margin     decimal.Decimal `json:"margin_eur"`
	ROIPercent decimal.Decimal `json:"roi_percent"`
}

// Calc computes landed cost, margin, and ROI server-side using stored
// settings with optional overrides.
func (c *Client) Calc(ctx context.Context, req *CalcRequest) (*CalcResult, error) {
	var result CalcResult
	if err := c.post(ctx, "/api/v1/calc", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
