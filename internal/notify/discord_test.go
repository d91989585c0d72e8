package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch(roi float64) MatchPayload {
	return MatchPayload{
		AlertName:   "High ROI FR",
		ASIN:        "B0TESTASIN",
		Title:       "LEGO Technic 42151",
		Marketplace: "FR",
		AmazonPrice: "25.00",
		RetailPrice: "9.99",
		Margin:      "5.00",
		ROIPercent:  fmt.Sprintf("%.1f%%", roi),
		ROI:         roi,
		ProductURL:  "https://www.amazon.fr/dp/B0TESTASIN",
	}
}

func captureServer(t *testing.T, statusCode int, captured *discordWebhookPayload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.WriteHeader(statusCode)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDiscordNotifier_SendMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		roi        float64
		statusCode int
		wantErr    bool
		wantColor  int
	}{
		{name: "high roi uses green", roi: 150, statusCode: http.StatusNoContent, wantColor: colorGreen},
		{name: "mid roi uses yellow", roi: 60, statusCode: http.StatusNoContent, wantColor: colorYellow},
		{name: "low roi uses orange", roi: 20, statusCode: http.StatusNoContent, wantColor: colorOrange},
		{name: "server error propagates", roi: 60, statusCode: http.StatusInternalServerError, wantErr: true},
		{name: "rate limit propagates", roi: 60, statusCode: http.StatusTooManyRequests, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured discordWebhookPayload
			srv := captureServer(t, tt.statusCode, &captured)

			d := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
			match := testMatch(tt.roi)
			err := d.SendMatch(context.Background(), &match)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, captured.Embeds, 1)

			embed := captured.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, "High ROI FR")
			assert.Contains(t, embed.Title, "LEGO Technic 42151")
			assert.Equal(t, "https://www.amazon.fr/dp/B0TESTASIN", embed.URL)

			fields := map[string]string{}
			for _, f := range embed.Fields {
				fields[f.Name] = f.Value
			}
			assert.Equal(t, "B0TESTASIN", fields["ASIN"])
			assert.Equal(t, "FR", fields["Marketplace"])
			assert.Equal(t, "25.00", fields["Amazon"])
		})
	}
}

func TestDiscordNotifier_SendMatchBatch(t *testing.T) {
	t.Parallel()

	t.Run("small batch sends all embeds", func(t *testing.T) {
		t.Parallel()

		var captured discordWebhookPayload
		srv := captureServer(t, http.StatusNoContent, &captured)
		d := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))

		matches := []MatchPayload{testMatch(120), testMatch(80), testMatch(40)}
		require.NoError(t, d.SendMatchBatch(context.Background(), "High ROI FR", matches))
		assert.Len(t, captured.Embeds, 3)
	})

	t.Run("oversized batch truncates with summary embed", func(t *testing.T) {
		t.Parallel()

		var captured discordWebhookPayload
		srv := captureServer(t, http.StatusNoContent, &captured)
		d := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))

		matches := make([]MatchPayload, 14)
		for i := range matches {
			matches[i] = testMatch(75)
		}
		require.NoError(t, d.SendMatchBatch(context.Background(), "High ROI FR", matches))

		require.Len(t, captured.Embeds, maxEmbedsPerMessage+1)
		last := captured.Embeds[maxEmbedsPerMessage]
		assert.Contains(t, last.Title, "4 more matches")
	})
}
