package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// BlacklistRepository implements domain.TokenBlacklist using SQLite.
type BlacklistRepository struct {
	db *sql.DB
}

// NewBlacklistRepository creates a new SQLite-backed BlacklistRepository.
func NewBlacklistRepository(db *DB) *BlacklistRepository {
	return &BlacklistRepository{db: db.SqlDB}
}

// Revoke records the exact token string. A second revoke of the same token
// is a no-op.
func (r *BlacklistRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO blacklisted_tokens (token, created_at) VALUES (?, ?)",
		token, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert blacklisted token: %w", err)
	}
	return nil
}

// Contains reports whether the exact token string has been revoked.
func (r *BlacklistRepository) Contains(ctx context.Context, token string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM blacklisted_tokens WHERE token = ?", token,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query blacklisted token: %w", err)
	}
	return n > 0, nil
}

// DeleteOlderThan removes blacklist entries created before cutoff.
func (r *BlacklistRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM blacklisted_tokens WHERE created_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired blacklist entries: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}
