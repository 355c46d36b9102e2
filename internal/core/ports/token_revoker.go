package ports

import (
	"context"
	"time"
)

// TokenRevoker records tokens that were explicitly logged out before expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
