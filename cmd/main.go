package main

import (
	"context"
	"os"
	"time"

	"github.com/orgball2608/linkedin-posts-exporter/internal/app"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{
		Env:       os.Getenv("APP_ENV"),
		SentryDSN: os.Getenv("SENTRY_DSN"),
	})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(app.ExitFailure)
	}

	// Wait for the export to finish or an interrupt signal.
	sig := <-application.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := application.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(app.ExitFailure)
	}

	os.Exit(sig.ExitCode)
}
