package store

import (
	"context"

	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
)

// Store persists the result of one export run.
type Store interface {
	Write(ctx context.Context, export *domain.Export) error
}
