// Package logging configures the service's slog output: JSON to stdout for
// request and lifecycle events, fanned out to an async Postgres sink so
// complaint-pipeline and auth errors stay queryable after log rotation.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
