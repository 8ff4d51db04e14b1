package app

import (
	"log/slog"
	"os"

	"serviceability-relay/internal/config"
	"serviceability-relay/internal/logx"
)

// NewLogger builds the process logger. Development mode lowers the level to
// debug; output is always JSON on stdout.
func NewLogger(cfg *config.Config) logx.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	return logx.NewSlogAdapter(base).With(logx.String("service", "serviceability-relay"))
}
