package app

import (
	"context"

	"github.com/orgball2608/linkedin-posts-exporter/internal/exporter"
	"github.com/orgball2608/linkedin-posts-exporter/internal/exporter/exporterimpl"
	"github.com/orgball2608/linkedin-posts-exporter/internal/repositories/archive"
	"github.com/orgball2608/linkedin-posts-exporter/internal/source"
	"github.com/orgball2608/linkedin-posts-exporter/internal/source/apisource"
	"github.com/orgball2608/linkedin-posts-exporter/internal/source/browsersource"
	"github.com/orgball2608/linkedin-posts-exporter/internal/store"
	"github.com/orgball2608/linkedin-posts-exporter/internal/store/filestore"
	"github.com/orgball2608/linkedin-posts-exporter/internal/telegram"
	"github.com/orgball2608/linkedin-posts-exporter/internal/telegram/telegramimpl"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	apperrors "github.com/orgball2608/linkedin-posts-exporter/pkg/errors"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"go.uber.org/fx"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitMissingConfig = 2
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		newSource,
		archive.New,
		fx.Annotate(
			filestore.New,
			fx.As(new(store.Store)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			exporterimpl.New,
			fx.As(new(exporter.Client)),
		),
	),
	fx.Invoke(run),
)

// newSource selects the retrieval strategy by configuration. An unknown value
// is caught by config.Validate before anything runs.
func newSource(cfg *config.Config, log logger.Logger) source.Client {
	if cfg.App.Source == config.SourceBrowser {
		return browsersource.New(browsersource.Opts{Config: cfg, Logger: log})
	}
	return apisource.New(apisource.Opts{Config: cfg, Logger: log})
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config, exp exporter.Client) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := cfg.Validate(); err != nil {
					log.Error("Invalid configuration", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(ExitMissingConfig))
					return
				}

				if cfg.App.Cron != "" {
					// Long-lived mode: keep running until signalled.
					if err := exp.ScheduleRuns(runCtx); err != nil {
						log.Error("Failed to start export schedule", "error", err)
						_ = shutdowner.Shutdown(fx.ExitCode(ExitFailure))
					}
					return
				}

				err := exp.RunOnce(runCtx)
				if err != nil {
					log.Error("Export failed", "error", err)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(exitCodeFor(err)))
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case apperrors.IsMissingConfig(err):
		return ExitMissingConfig
	default:
		return ExitFailure
	}
}
