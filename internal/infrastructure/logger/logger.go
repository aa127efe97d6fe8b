package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/LavaJover/shvark-country-service/internal/config"
)

// New builds the process logger from LogConfig. Unknown values fall back to
// info level, text format and stdout.
func New(cfg config.LogConfig) (*slog.Logger, error) {
	out, err := output(cfg.LogOutput)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level(cfg.LogLevel)}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler), nil
}

func level(s string) slog.Level {
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

func output(s string) (io.Writer, error) {
	switch strings.ToLower(s) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(s, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}
