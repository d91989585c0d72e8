package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domain "arbitrack/pkg/types"
)

// NoLimit disables pagination on a ScoreQuery. Alert evaluation uses it;
// the search API never does.
const NoLimit = -1

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByROI          = "roi"
	orderByMargin       = "margin"
	orderByBSR          = "bsr"
	orderByCalculatedAt = "calculated_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByROI:          "s.roi_percent DESC",
	orderByMargin:       "s.margin_eur DESC",
	orderByBSR:          "oa.bsr ASC NULLS LAST",
	orderByCalculatedAt: "s.calculated_at DESC",
}

const defaultOrderBy = "s.roi_percent DESC"

const baseScoresSelect = `SELECT s.product_id, p.asin, p.title, s.marketplace,
	oa.price, br.price + br.shipping_cost,
	s.landed_cost, s.margin_eur, s.roi_percent,
	oa.bsr, oa.sellers_count, oa.buybox_stable
FROM scores s
JOIN products p ON p.id = s.product_id
JOIN offers_amazon oa ON oa.product_id = s.product_id AND oa.marketplace = s.marketplace
LEFT JOIN offers_retail br ON br.id = s.best_retail_offer_id`

const countScoresSelect = `SELECT COUNT(*)
FROM scores s
JOIN products p ON p.id = s.product_id
JOIN offers_amazon oa ON oa.product_id = s.product_id AND oa.marketplace = s.marketplace
LEFT JOIN offers_retail br ON br.id = s.best_retail_offer_id`

// ScoreQuery defines optional filters for score queries. The predicate
// vocabulary is the same closed set alerts use; nil means unconstrained
// and all bounds are inclusive.
type ScoreQuery struct {
	ROIMin          *decimal.Decimal
	ROIMax          *decimal.Decimal
	MarginMin       *decimal.Decimal
	MarginMax       *decimal.Decimal
	BSRMax          *int
	SellersCountMax *int
	BuyboxStable    *bool
	Marketplace     *string
	Limit           int // default 50
	Offset          int
	OrderBy         string // "roi", "margin", "bsr", "calculated_at"
}

// QueryFromFilters converts an alert's filter set into a ScoreQuery.
// Alerts see the complete match set, so the query is unbounded.
func QueryFromFilters(f domain.AlertFilters) *ScoreQuery {
	return &ScoreQuery{
		ROIMin:          f.ROIMin,
		ROIMax:          f.ROIMax,
		MarginMin:       f.MarginMin,
		MarginMax:       f.MarginMax,
		BSRMax:          f.BSRMax,
		SellersCountMax: f.SellersCountMax,
		BuyboxStable:    f.BuyboxStable,
		Marketplace:     f.Marketplace,
		Limit:           NoLimit,
	}
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a score
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *ScoreQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	addCond := func(expr string, val any) {
		conditions = append(conditions, fmt.Sprintf(expr, paramIdx))
		args = append(args, val)
		paramIdx++
	}

	if q.ROIMin != nil {
		addCond("s.roi_percent >= $%d", *q.ROIMin)
	}
	if q.ROIMax != nil {
		addCond("s.roi_percent <= $%d", *q.ROIMax)
	}
	if q.MarginMin != nil {
		addCond("s.margin_eur >= $%d", *q.MarginMin)
	}
	if q.MarginMax != nil {
		addCond("s.margin_eur <= $%d", *q.MarginMax)
	}
	if q.BSRMax != nil {
		// An unknown rank never satisfies a rank ceiling.
		addCond("oa.bsr IS NOT NULL AND oa.bsr <= $%d", *q.BSRMax)
	}
	if q.SellersCountMax != nil {
		addCond("oa.sellers_count <= $%d", *q.SellersCountMax)
	}
	if q.BuyboxStable != nil {
		addCond("oa.buybox_stable = $%d", *q.BuyboxStable)
	}
	if q.Marketplace != nil {
		addCond("s.marketplace = $%d", *q.Marketplace)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	var pageClause string
	if q.Limit != NoLimit {
		limit := q.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		pageClause = fmt.Sprintf(" LIMIT %d OFFSET %d", limit, max(q.Offset, 0))
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s%s",
		baseScoresSelect, whereClause, orderClause, pageClause,
	)

	countSQL = countScoresSelect + whereClause

	return dataSQL, countSQL, args
}
