package exporter

import (
	"context"
)

// Client runs export jobs: fetch from the selected source, persist, archive,
// notify.
type Client interface {
	// RunOnce performs a single export run.
	RunOnce(ctx context.Context) error

	// ScheduleRuns sets up recurring runs per the configured cron expression
	// and returns once the scheduler is started.
	ScheduleRuns(ctx context.Context) error
}
