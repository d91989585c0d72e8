package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"arbitrack/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // roi 100%+
	colorYellow = 0xF1C40F // roi 50-99%
	colorOrange = 0xE67E22 // below 50%
)

// Discord allows at most this many embeds per webhook message.
const maxEmbedsPerMessage = 10

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendMatch sends a single match as a Discord embed.
func (d *DiscordNotifier) SendMatch(ctx context.Context, match *MatchPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(match)},
	}
	return d.post(ctx, payload)
}

// SendMatchBatch sends an alert's matches as a single Discord message.
func (d *DiscordNotifier) SendMatchBatch(
	ctx context.Context,
	alertName string,
	matches []MatchPayload,
) error {
	embeds := make([]discordEmbed, 0, len(matches))

	limit := min(len(matches), maxEmbedsPerMessage)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&matches[i]))
	}

	if len(matches) > maxEmbedsPerMessage {
		embeds = append(embeds, discordEmbed{
			Title: fmt.Sprintf("... and %d more matches for %s",
				len(matches)-maxEmbedsPerMessage, alertName),
			Color:       colorYellow,
			Description: "Run a score search for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(match *MatchPayload) discordEmbed {
	return discordEmbed{
		Title: fmt.Sprintf("%s: %s", match.AlertName, match.Title),
		URL:   match.ProductURL,
		Color: roiColor(match.ROI),
		Fields: []discordEmbedField{
			{Name: "ASIN", Value: match.ASIN, Inline: true},
			{Name: "Marketplace", Value: match.Marketplace, Inline: true},
			{Name: "ROI", Value: match.ROIPercent, Inline: true},
			{Name: "Margin", Value: match.Margin, Inline: true},
			{Name: "Amazon", Value: match.AmazonPrice, Inline: true},
			{Name: "Retail", Value: match.RetailPrice, Inline: true},
		},
	}
}

func roiColor(roi float64) int {
	switch {
	case roi >= 100:
		return colorGreen
	case roi >= 50:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.NotificationFailuresTotal.Inc()
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
