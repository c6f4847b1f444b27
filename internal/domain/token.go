package domain

import (
	"context"
	"time"
)

// BlacklistedToken records a token string that must no longer be honored,
// regardless of its cryptographic validity.
type BlacklistedToken struct {
	ID        int64
	Token     string
	CreatedAt time.Time
}

// TokenBlacklist is the revocation list consulted on every token
// verification.
type TokenBlacklist interface {
	// Revoke records the exact token string. Revoking an already-revoked
	// token is a no-op.
	Revoke(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
	// DeleteOlderThan removes entries created before cutoff and returns
	// the number of rows deleted. Entries older than the longest token
	// lifetime fail expiry validation anyway, so pruning them is safe.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
