package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webstore/store-api/internal/core/ports"
)

// RevocationStore remembers logged-out token ids until the tokens expire.
// Key format: revoked:<jti>
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks tokenID as revoked for ttl.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not yet expired.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// PingContext is used by the readiness probe.
func (s *RevocationStore) PingContext(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RevocationStore) key(tokenID string) string {
	return "revoked:" + tokenID
}

var _ ports.TokenRevoker = (*RevocationStore)(nil)
