package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the process-wide default slog logger. When
// ndjsonOnStdout is true the handler emits JSON on stderr so diagnostics
// never interleave with NDJSON classification output on stdout; otherwise a
// text handler is used for human readability. A non-nil writer overrides
// the destination (used by tests).
func Init(ndjsonOnStdout bool, level slog.Level, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if ndjsonOnStdout {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// Component returns a logger tagged with a component attribute for
// stage-scoped diagnostics.
func Component(name string) *slog.Logger {
	return slog.Default().With(slog.String("component", name))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
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
