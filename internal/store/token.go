package store

import (
	"context"
	"time"
)

// TokenStore records bearer tokens that were revoked before they expired.
type TokenStore interface {
	// Revoke marks the token ID as revoked until expiresAt. Revoking an
	// already revoked token is not an error.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether the token ID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
