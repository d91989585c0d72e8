package client

import (
	"context"
	"net/url"
	"strconv"

	domain "arbitrack/pkg/types"
)

// ScoreFilters holds the optional query parameters for score search and
// export. Zero values are omitted from the request.
type ScoreFilters struct {
	ROIMin      string
	ROIMax      string
	MarginMin   string
	MarginMax   string
	BSRMax      int
	SellersMax  int
	Marketplace string
	Limit       int
	Offset      int
	OrderBy     string
}

func (f *ScoreFilters) encode() string {
	q := url.Values{}
	setStr := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	setStr("roi_min", f.ROIMin)
	setStr("roi_max", f.ROIMax)
	setStr("margin_min", f.MarginMin)
	setStr("margin_max", f.MarginMax)
	setStr("marketplace", f.Marketplace)
	setStr("order_by", f.OrderBy)
	if f.BSRMax > 0 {
		q.Set("bsr_max", strconv.Itoa(f.BSRMax))
	}
	if f.SellersMax > 0 {
		q.Set("sellers_max", strconv.Itoa(f.SellersMax))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}

	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ScorePage is one page of score search results.
type ScorePage struct {
	Scores []domain.ScoreRow `json:"scores"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ListScores returns scored rows matching the given filters.
func (c *Client) ListScores(ctx context.Context, filters *ScoreFilters) (*ScorePage, error) {
	if filters == nil {
		filters = &ScoreFilters{}
	}

	var page ScorePage
	if err := c.get(ctx, "/api/v1/scores"+filters.encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExportScores returns the matching score rows as a CSV document.
func (c *Client) ExportScores(ctx context.Context, filters *ScoreFilters) ([]byte, error) {
	if filters == nil {
		filters = &ScoreFilters{}
	}
	return c.getRaw(ctx, "/api/v1/scores/export"+filters.encode())
}

// GetScore returns the stored score for one (product, marketplace) pair.
func (c *Client) GetScore(ctx context.Context, productID, marketplace string) (*domain.Score, error) {
	var s domain.Score
	path := "/api/v1/products/" + productID + "/scores/" + marketplace
	if err := c.get(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
