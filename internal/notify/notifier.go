// Package notify defines the notification interface and implementations
// for alert match delivery.
package notify

import "context"

// MatchPayload contains the data needed to announce one matched product.
// Monetary fields arrive preformatted; the notifier only lays them out.
type MatchPayload struct {
	AlertName   string
	ASIN        string
	Title       string
	Marketplace string
	AmazonPrice string
	RetailPrice string
	Margin      string
	ROIPercent  string
	ROI         float64
	ProductURL  string
}

// Notifier defines the interface for sending alert match notifications.
type Notifier interface {
	SendMatch(ctx context.Context, match *MatchPayload) error
	SendMatchBatch(ctx context.Context, alertName string, matches []MatchPayload) error
}
