package main

import (
	"bingo_backend/internal/app"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           levelFromEnv(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp(logger).Run(ctx); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

// levelFromEnv LOG_LEVEL: debug, info, warn, error. По умолчанию info
func levelFromEnv() log.Level {
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
