package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := NewNoOpNotifier(log)

	match := testMatch(75)
	require.NoError(t, n.SendMatch(context.Background(), &match))
	assert.Contains(t, buf.String(), "B0TESTASIN")

	buf.Reset()
	require.NoError(t, n.SendMatchBatch(context.Background(), "High ROI FR", []MatchPayload{match}))
	assert.Contains(t, buf.String(), "count=1")
}
