package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tesouraria-ibs/db"
)

// PostgresKeyValueRepository stores keys in the kv_store table
type PostgresKeyValueRepository struct{}

// NewPostgresKeyValueRepository creates a PostgresKeyValueRepository.
// db.InitDB and db.EnsureSchema must have run.
func NewPostgresKeyValueRepository() *PostgresKeyValueRepository {
	return &PostgresKeyValueRepository{}
}

// Ensure PostgresKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*PostgresKeyValueRepository)(nil)

// Get returns the value stored under key
func (r *PostgresKeyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := db.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set upserts value under key
func (r *PostgresKeyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := db.DB.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *PostgresKeyValueRepository) Delete(ctx context.Context, key string) error {
	if _, err := db.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the shared connection
func (r *PostgresKeyValueRepository) Close() error {
	return db.CloseDB()
}
