package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"blogapi/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryConfig holds shared dependencies for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Users    string
	Articles string
	Comments string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:    fmt.Sprintf("%susers", prefix),
		Articles: fmt.Sprintf("%sarticles", prefix),
		Comments: fmt.Sprintf("%scomments", prefix),
	}
}

// CreateConnectionPool creates a pgx connection pool and verifies the
// connection with a ping before returning it.
//
// Note on dynamic table names: the fmt.Sprintf interpolation of table
// prefixes (dev_, test_, prod_) happens before the SQL is sent to the
// database, so each environment gets its own statements and no user input
// ever reaches the SQL text.
func CreateConnectionPool(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the transaction.
// Otherwise, it returns the provided pool. This enables repositories to
// automatically participate in transactions when they exist.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
