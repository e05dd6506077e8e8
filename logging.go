package panzoom

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogOptions describe how to build the diagnostic logger.
type LogOptions struct {
	Level  string
	Format string
	Output io.Writer
}

// LogOptions returns the logging settings carried by c.
func (c Config) LogOptions() LogOptions {
	return LogOptions{Level: c.LogLevel, Format: c.LogFormat}
}

// NewLogger creates a structured logger for tracker diagnostics.
// Output defaults to stderr, level to warn and format to text.
func NewLogger(opts LogOptions) (*slog.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text", "console":
		handler = slog.NewTextHandler(out, &handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(out, &handlerOpts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}
	return slog.New(handler).With(slog.String("component", "panzoom")), nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q", level)
	}
}
