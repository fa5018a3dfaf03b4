package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	"github.com/orgball2608/linkedin-posts-exporter/internal/store"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type FileStore struct {
	Path   string
	Logger logger.Logger
}

func New(opts Opts) *FileStore {
	return &FileStore{
		Path:   opts.Config.App.OutputPath,
		Logger: opts.Logger.WithComponent("FileStore"),
	}
}

var _ store.Store = (*FileStore)(nil)

// Write serializes the export payload as indented JSON to the configured
// path, unconditionally replacing any previous artifact.
func (f *FileStore) Write(ctx context.Context, export *domain.Export) error {
	data, err := json.MarshalIndent(export.Payload(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	f.Logger.Info("Wrote export artifact",
		"path", f.Path,
		"source", export.Source,
		"posts", export.PostCount(),
		"bytes", len(data))
	return nil
}
