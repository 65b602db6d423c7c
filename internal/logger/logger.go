package logger

import (
	"log/slog"
	"os"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"
)

// Logger wraps slog so the rest of the service depends on one type.
type Logger struct {
	*slog.Logger
}

// New builds a logger for the given environment: readable text output with
// debug level for dev and test, JSON at info level for everything else.
func New(env string) *Logger {
	var handler slog.Handler
	switch env {
	case envDev, envTest:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{slog.New(handler)}
}
