package source

import (
	"context"

	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
)

// Client is the retrieval capability behind the exporter. Two implementations
// exist: the official REST API and a headless-browser scrape of the rendered
// feed. Which one runs is a configuration choice.
type Client interface {
	Name() string
	FetchPosts(ctx context.Context) (*domain.Export, error)
}
