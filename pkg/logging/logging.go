// Package logging builds the slog logger shared by the CLI and the browser,
// writing to a rotated file when one is configured.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stalwar-deckers/catalog/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup builds a text logger from cfg and installs it as the slog default.
// Without a log file, records go to fallback; the browser passes io.Discard
// so nothing is written over the screen.
// The returned cleanup closes the log file.
func Setup(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	writer := fallback
	cleanup := func() error { return nil }
	if writer == nil {
		writer = os.Stderr
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	}

	logger := slog.New(slog.NewTextHandler(writer, opts))
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
