package app

import (
	"context"
	"log/slog"
	"testing"

	"paintr/internal/clipboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, ClipboardSystem, cfg.Clipboard)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PAINTR_LOG_LEVEL", "debug")
	t.Setenv("PAINTR_HISTORY_LIMIT", "50")
	t.Setenv("PAINTR_CLIPBOARD", "memory")
	t.Setenv("PAINTR_WINDOW_WIDTH", "1024")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, 1024, cfg.WindowWidth)
	assert.IsType(t, &clipboard.Memory{}, cfg.NewClipboard())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PAINTR_LOG_LEVEL", "loud"},
		{"PAINTR_CLIPBOARD", "x11"},
		{"PAINTR_HISTORY_LIMIT", "-1"},
		{"PAINTR_HISTORY_LIMIT", "many"},
		{"PAINTR_WINDOW_HEIGHT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError), "silent by default")

	l := slog.New(slog.NewTextHandler(&discard{}, nil))
	SetLogger(l)
	assert.Same(t, l, Logger())

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
