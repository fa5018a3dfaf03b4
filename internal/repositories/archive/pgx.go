package archive

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	"github.com/orgball2608/linkedin-posts-exporter/internal/repositories"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ArchiveRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// UpsertPosts writes each post keyed by its activity id. Posts without an id
// cannot be deduplicated across runs and are skipped with a log line.
func (p *Pgx) UpsertPosts(ctx context.Context, source string, posts []domain.Post) (int64, error) {
	var written int64
	for _, post := range posts {
		if post.ID == "" {
			p.logger.Debug("Skipping archive of post without activity id", "url", post.URL)
			continue
		}

		images, err := json.Marshal(post.Images)
		if err != nil {
			return written, err
		}

		linkURL := ""
		if post.Link != nil {
			linkURL = post.Link.URL
		}

		query, args, err := repositories.SqBuilder.
			Insert("exported_posts").
			Columns("post_id", "source", "author_name", "author_avatar", "posted_at",
				"body", "images", "link_url", "likes", "comments", "reposts", "post_url", "updated_at").
			Values(post.ID, source, post.Author.Name, post.Author.Avatar, post.Date,
				post.Text, images, linkURL, post.Counts.Likes, post.Counts.Comments,
				post.Counts.Reposts, post.URL, time.Now()).
			Suffix(`ON CONFLICT (post_id) DO UPDATE SET
				body = EXCLUDED.body,
				images = EXCLUDED.images,
				likes = EXCLUDED.likes,
				comments = EXCLUDED.comments,
				reposts = EXCLUDED.reposts,
				updated_at = EXCLUDED.updated_at`).
			ToSql()
		if err != nil {
			return written, repositories.ErrBadQuery
		}

		if _, err := p.pg.Exec(ctx, query, args...); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
