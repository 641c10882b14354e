package app

import (
	"fmt"
	"log/slog"
	"strings"

	"paintr/internal/clipboard"

	"github.com/kelseyhightower/envconfig"
)

// Clipboard backends selectable with PAINTR_CLIPBOARD.
const (
	ClipboardSystem = "system"
	ClipboardMemory = "memory"
)

// Config holds settings read from PAINTR_* environment variables.
type Config struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	HistoryLimit int    `envconfig:"HISTORY_LIMIT" default:"0"`
	Clipboard    string `envconfig:"CLIPBOARD" default:"system"`
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"800"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"600"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("paintr", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Clipboard {
	case ClipboardSystem, ClipboardMemory:
	default:
		return fmt.Errorf("invalid clipboard %q: want %s or %s", c.Clipboard, ClipboardSystem, ClipboardMemory)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("invalid history limit %d", c.HistoryLimit)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
}

// NewClipboard returns the configured clipboard. When the system clipboard
// is unavailable it falls back to an in-process one.
func (c *Config) NewClipboard() clipboard.Clipboard {
	if c.Clipboard == ClipboardMemory {
		return clipboard.NewMemory()
	}
	sys, err := clipboard.NewSystem()
	if err != nil {
		Logger().Warn("using in-process clipboard", "err", err)
		return clipboard.NewMemory()
	}
	return sys
}
