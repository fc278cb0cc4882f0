package seed

import (
	"context"
	"fmt"

	"blogapi/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables for the current environment prefix if
// they do not exist. The unique constraints on username/email and the
// ON DELETE CASCADE foreign keys are the storage-layer backstop the
// service layer's checks rely on.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				username VARCHAR(150) NOT NULL,
				email VARCHAR(254) NOT NULL,
				first_name VARCHAR(150) NOT NULL DEFAULT '',
				last_name VARCHAR(150) NOT NULL DEFAULT '',
				password_hash TEXT NOT NULL,
				is_staff BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT %s_username_key UNIQUE (username),
				CONSTRAINT %s_email_key UNIQUE (email)
			)
		`, tables.Users, tables.Users, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				title VARCHAR(200) NOT NULL,
				content TEXT NOT NULL,
				tags VARCHAR(255) NOT NULL DEFAULT '',
				author_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, tables.Articles, tables.Users),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_created_at_idx ON %s (created_at)`, tables.Articles, tables.Articles),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				article_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				author_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				content TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, tables.Comments, tables.Articles, tables.Users),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_article_id_idx ON %s (article_id)`, tables.Comments, tables.Comments),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// DropTables drops the environment's tables, comments first to respect
// the foreign keys. Only ever called from the seed command, which refuses
// to run destructive operations in production.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	for _, table := range []string{tables.Comments, tables.Articles, tables.Users} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}
