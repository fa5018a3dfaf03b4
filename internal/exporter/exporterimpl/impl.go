package exporterimpl

import (
	"context"

	"github.com/orgball2608/linkedin-posts-exporter/internal/exporter"
	"github.com/orgball2608/linkedin-posts-exporter/internal/repositories/archive"
	"github.com/orgball2608/linkedin-posts-exporter/internal/source"
	"github.com/orgball2608/linkedin-posts-exporter/internal/store"
	"github.com/orgball2608/linkedin-posts-exporter/internal/telegram"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	apperrors "github.com/orgball2608/linkedin-posts-exporter/pkg/errors"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Source   source.Client
	Store    store.Store
	Archive  archive.Repository
	Telegram telegram.Client
	Logger   logger.Logger
	Config   *config.Config
}

type ExporterImpl struct {
	Source   source.Client
	Store    store.Store
	Archive  archive.Repository
	Telegram telegram.Client
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *ExporterImpl {
	return &ExporterImpl{
		Source:   opts.Source,
		Store:    opts.Store,
		Archive:  opts.Archive,
		Telegram: opts.Telegram,
		Logger:   opts.Logger.WithComponent("Exporter"),
		Config:   opts.Config,
	}
}

var _ exporter.Client = (*ExporterImpl)(nil)

// RunOnce fetches posts from the selected source and writes the artifact.
// Any fetch or persistence failure aborts the run without touching the
// previous output file.
func (e *ExporterImpl) RunOnce(ctx context.Context) error {
	e.Logger.Info("Starting export run", "source", e.Source.Name())

	export, err := e.Source.FetchPosts(ctx)
	if err != nil {
		e.Telegram.NotifyFailure(err)
		return apperrors.Wrap(err, "failed to fetch posts")
	}

	if err := e.Store.Write(ctx, export); err != nil {
		e.Telegram.NotifyFailure(err)
		return apperrors.Wrap(err, "failed to persist export")
	}

	// The file is the primary artifact; a broken archive database must not
	// fail a run that already produced it.
	if len(export.Posts) > 0 {
		written, err := e.Archive.UpsertPosts(ctx, export.Source, export.Posts)
		if err != nil {
			e.Logger.Error("Failed to archive posts", "error", err)
		} else if written > 0 {
			e.Logger.Info("Archived posts", "rows", written)
		}
	}

	e.Telegram.NotifySuccess(export)
	e.Logger.Info("Export run finished",
		"source", export.Source,
		"posts", export.PostCount(),
		"skipped", len(export.Skips))
	return nil
}
