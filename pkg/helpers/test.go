package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

// TestCtx returns a context carrying a test logger.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), TestLogger())
}

// TestLogger returns a logger that discards everything.
func TestLogger() *slog.Logger {
	return logger.New("debug", logger.NewTestHandler)
}
