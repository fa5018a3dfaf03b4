package exporterimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleRuns sets up recurring exports on the configured cron expression.
// Used when the job runs as its own long-lived process instead of under an
// external scheduler.
func (e *ExporterImpl) ScheduleRuns(ctx context.Context) error {
	e.Logger.Info("Setting up export schedule", "cron", e.Config.App.Cron)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(
			e.Config.App.Cron,
			false,
		),
		gocron.NewTask(func() {
			runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()

			if err := e.RunOnce(runCtx); err != nil {
				e.Logger.Error("Scheduled export failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule export: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		e.Logger.Info("Stopping export scheduler")
		if err := scheduler.Shutdown(); err != nil {
			e.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
