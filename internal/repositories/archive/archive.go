package archive

import (
	"context"

	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
)

// Repository keeps a history of normalized posts across runs. The JSON file
// stays the primary artifact; the archive only exists when Postgres is
// configured.
type Repository interface {
	// UpsertPosts inserts or refreshes the given posts, returning how many
	// rows were written.
	UpsertPosts(ctx context.Context, source string, posts []domain.Post) (int64, error)
}
