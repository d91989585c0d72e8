package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// ScoresHandler handles score search endpoints.
type ScoresHandler struct {
	store store.Store
}

// NewScoresHandler creates a new ScoresHandler.
func NewScoresHandler(s store.Store) *ScoresHandler {
	return &ScoresHandler{store: s}
}

// ScoreFilterInput holds the query filters shared by score search and export.
// Bounds are inclusive; empty values mean no constraint on that dimension.
type ScoreFilterInput struct {
	ROIMin       string `query:"roi_min"       doc:"Minimum ROI percent"                  example:"30"`
	ROIMax       string `query:"roi_max"       doc:"Maximum ROI percent"`
	MarginMin    string `query:"margin_min"    doc:"Minimum margin"`
	MarginMax    string `query:"margin_max"    doc:"Maximum margin"`
	BSRMax       int    `query:"bsr_max"       doc:"Maximum best sellers rank"            minimum:"0"`
	SellersMax   int    `query:"sellers_max"   doc:"Maximum competing sellers"            minimum:"0"`
	BuyboxStable string `query:"buybox_stable" doc:"Filter by buybox stability"           enum:"true,false,"`
	Marketplace  string `query:"marketplace"   doc:"Filter by marketplace code"           example:"FR"`
	Limit        int    `query:"limit"         doc:"Number of results (default 50)"       minimum:"1" maximum:"500"`
	Offset       int    `query:"offset"        doc:"Pagination offset"                    minimum:"0"`
	OrderBy      string `query:"order_by"      doc:"Sort field"                           enum:"roi,margin,bsr,calculated_at,"`
}

// ListScoresOutput is the response for score search.
type ListScoresOutput struct {
	Body struct {
		Scores []domain.ScoreRow `json:"scores"`
		Total  int               `json:"total"`
		Limit  int               `json:"limit"`
		Offset int               `json:"offset"`
	}
}

// ExportScoresOutput is the CSV response for score export.
type ExportScoresOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetScoreInput identifies one score by product and marketplace.
type GetScoreInput struct {
	ProductID   string `path:"product_id"  doc:"Product UUID"`
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"FR"`
}

// GetScoreOutput is the response for a single score.
type GetScoreOutput struct {
	Body domain.Score
}

// toQuery converts the filter input into a store query. Decimal filters are
// parsed here so a malformed value fails the request instead of the query.
func (in *ScoreFilterInput) toQuery() (*store.ScoreQuery, error) {
	q := &store.ScoreQuery{
		Limit:   in.Limit,
		Offset:  in.Offset,
		OrderBy: in.OrderBy,
	}

	decFields := []struct {
		name  string
		raw   string
		field **decimal.Decimal
	}{
		{"roi_min", in.ROIMin, &q.ROIMin},
		{"roi_max", in.ROIMax, &q.ROIMax},
		{"margin_min", in.MarginMin, &q.MarginMin},
		{"margin_max", in.MarginMax, &q.MarginMax},
	}
	for _, df := range decFields {
		if df.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(df.raw)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid " + df.name + ": " + df.raw)
		}
		*df.field = &d
	}

	if in.BSRMax != 0 {
		q.BSRMax = &in.BSRMax
	}
	if in.SellersMax != 0 {
		q.SellersCountMax = &in.SellersMax
	}
	if in.BuyboxStable != "" {
		stable := in.BuyboxStable == "true"
		q.BuyboxStable = &stable
	}
	if in.Marketplace != "" {
		q.Marketplace = &in.Marketplace
	}

	return q, nil
}

// ListScores returns scored product rows matching the given filters.
func (h *ScoresHandler) ListScores(
	ctx context.Context,
	input *ScoreFilterInput,
) (*ListScoresOutput, error) {
	q, err := input.toQuery()
	if err != nil {
		return nil, err
	}

	rows, total, err := h.store.QueryScores(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("score query failed: " + err.Error())
	}

	if rows == nil {
		rows = []domain.ScoreRow{}
	}

	resp := &ListScoresOutput{}
	resp.Body.Scores = rows
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

var csvHeader = []string{
	"asin", "title", "marketplace", "amazon_price", "retail_price",
	"landed_cost", "margin", "roi_percent", "bsr", "sellers_count",
	"buybox_stable",
}

// ExportScores returns the matching score rows as a CSV document.
func (h *ScoresHandler) ExportScores(
	ctx context.Context,
	input *ScoreFilterInput,
) (*ExportScoresOutput, error) {
	q, err := input.toQuery()
	if err != nil {
		return nil, err
	}

	rows, _, err := h.store.QueryScores(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("score query failed: " + err.Error())
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, huma.Error500InternalServerError("writing csv: " + err.Error())
	}

	for i := range rows {
		r := &rows[i]

		retail := ""
		if r.RetailPrice != nil {
			retail = r.RetailPrice.StringFixed(2)
		}
		bsr := ""
		if r.BSR != nil {
			bsr = strconv.Itoa(*r.BSR)
		}
		stable := "false"
		if r.BuyboxStable {
			stable = "true"
		}

		record := []string{
			r.ASIN, r.Title, r.Marketplace,
			r.AmazonPrice.StringFixed(2), retail,
			r.LandedCost.StringFixed(2), r.Margin.StringFixed(2),
			r.ROIPercent.StringFixed(2), bsr,
			strconv.Itoa(r.SellersCount), stable,
		}
		if err := w.Write(record); err != nil {
			return nil, huma.Error500InternalServerError("writing csv: " + err.Error())
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, huma.Error500InternalServerError("writing csv: " + err.Error())
	}

	return &ExportScoresOutput{
		ContentType: "text/csv",
		Body:        buf.Bytes(),
	}, nil
}

// GetScore returns the stored score for one (product, marketplace) pair.
func (h *ScoresHandler) GetScore(
	ctx context.Context,
	input *GetScoreInput,
) (*GetScoreOutput, error) {
	s, err := h.store.GetScore(ctx, input.ProductID, input.Marketplace)
	if err != nil {
		return nil, huma.Error404NotFound("score not found")
	}

	return &GetScoreOutput{Body: *s}, nil
}

// RegisterScoreRoutes registers score endpoints with the Huma API.
func RegisterScoreRoutes(api huma.API, h *ScoresHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-scores",
		Method:      http.MethodGet,
		Path:        "/api/v1/scores",
		Summary:     "Search scores",
		Description: "Returns scored product rows with optional ROI, margin, BSR, seller, and marketplace filters.",
		Tags:        []string{"scores"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.ListScores)

	huma.Register(api, huma.Operation{
		OperationID: "export-scores",
		Method:      http.MethodGet,
		Path:        "/api/v1/scores/export",
		Summary:     "Export scores as CSV",
		Description: "Returns the matching score rows as a CSV document.",
		Tags:        []string{"scores"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.ExportScores)

	huma.Register(api, huma.Operation{
		OperationID: "get-score",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{product_id}/scores/{marketplace}",
		Summary:     "Get a score",
		Description: "Returns the stored score for one product on one marketplace.",
		Tags:        []string{"scores"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetScore)
}
