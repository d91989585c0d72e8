package engine

import (
	"context"
	"fmt"
	"strings"

	"arbitrack/internal/metrics"
	"arbitrack/internal/notify"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// EvaluateAlert runs one alert's filters against the current scores.
// It returns ErrNotFound for an unknown alert and ErrInactive for a
// disabled one. The alert's last_run_at is touched on every successful
// evaluation, matches or not. Notification failures are logged, never
// propagated; the evaluation result stands on its own.
func (eng *Engine) EvaluateAlert(ctx context.Context, alertID string) (*AlertResult, error) {
	alert, err := eng.store.GetAlert(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("getting alert %s: %w", alertID, err)
	}
	if !alert.Active {
		return nil, fmt.Errorf("alert %q: %w", alert.Name, domain.ErrInactive)
	}

	candidates, _, err := eng.store.QueryScores(ctx, store.QueryFromFilters(alert.Filters))
	if err != nil {
		return nil, fmt.Errorf("querying scores for alert %q: %w", alert.Name, err)
	}

	// The SQL filter narrows the candidate set; Match decides.
	rows := make([]domain.ScoreRow, 0, len(candidates))
	for i := range candidates {
		if alert.Filters.Match(&candidates[i]) {
			rows = append(rows, candidates[i])
		}
	}

	if err := eng.store.TouchAlertLastRun(ctx, alert.ID); err != nil {
		return nil, fmt.Errorf("touching alert %q: %w", alert.Name, err)
	}

	metrics.AlertsEvaluatedTotal.Inc()
	metrics.AlertMatchesTotal.Add(float64(len(rows)))

	if len(rows) > 0 && eng.notifier != nil {
		if err := eng.notifier.SendMatchBatch(ctx, alert.Name, buildMatchPayloads(alert.Name, rows)); err != nil {
			eng.log.Warn("alert notification failed",
				"alert", alert.Name, "matches", len(rows), "error", err)
		}
	}

	eng.log.Info("alert evaluated",
		"alert", alert.Name, "matches", len(rows))

	return &AlertResult{
		AlertID:       alert.ID,
		AlertName:     alert.Name,
		ProductsCount: len(rows),
		Products:      rows,
	}, nil
}

func buildMatchPayloads(alertName string, rows []domain.ScoreRow) []notify.MatchPayload {
	payloads := make([]notify.MatchPayload, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		roi, _ := r.ROIPercent.Float64()

		retail := "n/a"
		if r.RetailPrice != nil {
			retail = r.RetailPrice.StringFixed(2)
		}

		payloads = append(payloads, notify.MatchPayload{
			AlertName:   alertName,
			ASIN:        r.ASIN,
			Title:       r.Title,
			Marketplace: r.Marketplace,
			AmazonPrice: r.AmazonPrice.StringFixed(2),
			RetailPrice: retail,
			Margin:      r.Margin.StringFixed(2),
			ROIPercent:  r.ROIPercent.StringFixed(1) + "%",
			ROI:         roi,
			ProductURL:  productURL(r.Marketplace, r.ASIN),
		})
	}
	return payloads
}

// productURL builds the marketplace-local Amazon product page URL.
func productURL(marketplace, asin string) string {
	tld := strings.ToLower(marketplace)
	switch tld {
	case "":
		tld = "com"
	case "uk":
		tld = "co.uk"
	}
	return fmt.Sprintf("https://www.amazon.%s/dp/%s", tld, asin)
}
