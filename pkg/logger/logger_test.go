package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbitrack/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriterFormats(t *testing.T) {
	t.Parallel()

	var text bytes.Buffer
	logger.NewWithWriter(&text, "info", "text").Info("hello")
	assert.Contains(t, text.String(), "level=INFO")
	assert.Contains(t, text.String(), "hello")

	var js bytes.Buffer
	logger.NewWithWriter(&js, "info", "json").Info("hello")
	assert.Contains(t, js.String(), `"level":"INFO"`)
	assert.Contains(t, js.String(), `"msg":"hello"`)
}

func TestNewWithWriterFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn", "text")
	l.Info("suppressed")
	assert.Empty(t, buf.String())
	l.Warn("visible")
	assert.NotEmpty(t, buf.String())

	require.NotNil(t, logger.New("info", "text"))
}
