package common

import (
	"log/slog"
	"os"
)

// SetupLogger installs the global slog logger. Format is "json" for JSON
// lines, anything else for human-readable text. Logs go to stderr so stdout
// stays clean for piped JSON output.
func SetupLogger(level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
