package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateExportedPosts, downCreateExportedPosts)
}

func upCreateExportedPosts(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE exported_posts (
		id SERIAL PRIMARY KEY,
		post_id VARCHAR NOT NULL UNIQUE,
		source VARCHAR NOT NULL,
		author_name VARCHAR,
		author_avatar VARCHAR,
		posted_at VARCHAR,
		body TEXT,
		images JSONB,
		link_url VARCHAR,
		likes INT NOT NULL DEFAULT 0,
		comments INT NOT NULL DEFAULT 0,
		reposts INT NOT NULL DEFAULT 0,
		post_url VARCHAR,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateExportedPosts(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE exported_posts;
	`)
	if err != nil {
		return err
	}
	return nil
}
