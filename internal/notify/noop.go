package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded matches. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards matches with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendMatch logs and discards a single match.
func (n *NoOpNotifier) SendMatch(_ context.Context, match *MatchPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"alert", match.AlertName,
		"asin", match.ASIN,
		"roi", match.ROIPercent,
	)
	return nil
}

// SendMatchBatch logs and discards a batch of matches.
func (n *NoOpNotifier) SendMatchBatch(_ context.Context, alertName string, matches []MatchPayload) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"alert", alertName,
		"count", len(matches),
	)
	return nil
}
