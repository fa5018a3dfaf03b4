package archive

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	_ "github.com/orgball2608/linkedin-posts-exporter/internal/migrations"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	pgxpkg "github.com/orgball2608/linkedin-posts-exporter/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

type ModuleOpts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// New provides the archive repository: a Postgres-backed one when POSTGRES_HOST
// is set, otherwise a no-op so the exporter never has to care.
func New(opts ModuleOpts) (Repository, error) {
	if !opts.Config.ArchiveEnabled() {
		opts.Logger.Info("Postgres not configured, archive disabled")
		return &Disabled{logger: opts.Logger.WithComponent("ArchiveRepo")}, nil
	}

	pool, err := pgxpkg.New(pgxpkg.Opts{
		LC:     opts.LC,
		Logger: opts.Logger,
		Config: opts.Config,
	})
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrate(opts.Config)
		},
	})

	return NewPgx(pool, opts.Logger), nil
}

func migrate(cfg *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	// Migrations are registered in code by the migrations package import.
	return goose.Up(db, ".")
}

// Disabled is the archive used when no Postgres is configured.
type Disabled struct {
	logger logger.Logger
}

var _ Repository = (*Disabled)(nil)

func (d *Disabled) UpsertPosts(ctx context.Context, source string, posts []domain.Post) (int64, error) {
	return 0, nil
}
