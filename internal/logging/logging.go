// Package logging builds the slog logger shared by every command.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Options selects the handler. Level is one of debug, info, warn, error;
// Format is "text" or "json".
type Options struct {
	Level  string
	Format string
}

// New returns a logger writing to w. Report messages go to stdout, so
// callers normally pass os.Stderr here.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		h = slog.NewJSONHandler(w, handlerOpts)
	default:
		h = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(h)
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
