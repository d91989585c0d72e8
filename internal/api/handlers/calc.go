package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"arbitrack/internal/settings"
	"arbitrack/pkg/finance"
)

// SettingsResolver produces the effective financial settings snapshot.
type SettingsResolver interface {
	Snapshot(ctx context.Context) (*settings.Snapshot, error)
}

// CalcHandler handles ad hoc profitability calculations.
type CalcHandler struct {
	resolver SettingsResolver
}

// NewCalcHandler creates a new CalcHandler.
func NewCalcHandler(r SettingsResolver) *CalcHandler {
	return &CalcHandler{resolver: r}
}

// CalcInput is the request body for the calc endpoint. Optional fields fall
// back to the stored settings for the given marketplace.
type CalcInput struct {
	Body struct {
		RetailPrice    decimal.Decimal  `json:"retail_price"              doc:"Retail purchase price"         example:"10.00"`
		RetailShipping decimal.Decimal  `json:"retail_shipping,omitempty" doc:"Retail shipping cost"          example:"2.50"`
		AmazonPrice    *decimal.Decimal `json:"amazon_price,omitempty"    doc:"Expected Amazon sale price"    example:"29.99"`
		Marketplace    string           `json:"marketplace,omitempty"     doc:"Marketplace for fee defaults"  example:"FR"`
		VATRate        *decimal.Decimal `json:"vat_rate,omitempty"        doc:"VAT rate override"             example:"0.20"`
		PrepCost       *decimal.Decimal `json:"prep_cost,omitempty"       doc:"Prep cost override"`
		FBAFee         *decimal.Decimal `json:"fba_fee,omitempty"         doc:"FBA fee override"`
		ReferralFee    *decimal.Decimal `json:"referral_fee,omitempty"    doc:"Referral fee override"`
	}
}

// CalcOutput is the response body for the calc endpoint.
type CalcOutput struct {
	Body struct {
		LandedCost decimal.Decimal `json:"landed_cost" doc:"Purchase cost with VAT and prep"`
		Margin     decimal.Decimal `json:"margin_eur"  doc:"Net margin after Amazon fees"`
		ROIPercent decimal.Decimal `json:"roi_percent" doc:"Margin over landed cost, percent"`
	}
}

// Calc computes landed cost, margin, and ROI for a hypothetical purchase.
// Overrides in the request win over stored settings.
func (h *CalcHandler) Calc(ctx context.Context, input *CalcInput) (*CalcOutput, error) {
	snap, err := h.resolver.Snapshot(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("resolving settings: " + err.Error())
	}

	fees := snap.FeesFor(input.Body.Marketplace)

	in := finance.Inputs{
		RetailPrice:    input.Body.RetailPrice,
		RetailShipping: input.Body.RetailShipping,
		VATRate:        snap.VATRate,
		PrepCost:       snap.PrepCost,
		AmazonPrice:    input.Body.AmazonPrice,
		FBAFee:         fees.FBAFee,
		ReferralFee:    fees.ReferralFee,
	}
	if input.Body.VATRate != nil {
		in.VATRate = *input.Body.VATRate
	}
	if input.Body.PrepCost != nil {
		in.PrepCost = *input.Body.PrepCost
	}
	if input.Body.FBAFee != nil {
		in.FBAFee = *input.Body.FBAFee
	}
	if input.Body.ReferralFee != nil {
		in.ReferralFee = *input.Body.ReferralFee
	}

	result := finance.Compute(in)

	resp := &CalcOutput{}
	resp.Body.LandedCost = result.LandedCost
	resp.Body.Margin = result.Margin
	resp.Body.ROIPercent = result.ROIPercent
	return resp, nil
}

// RegisterCalcRoutes registers the calc endpoint with the Huma API.
func RegisterCalcRoutes(api huma.API, h *CalcHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "calc",
		Method:      http.MethodPost,
		Path:        "/api/v1/calc",
		Summary:     "Calculate profitability",
		Description: "Computes landed cost, margin, and ROI for a hypothetical purchase using stored settings with optional per-request overrides.",
		Tags:        []string{"calc"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Calc)
}
