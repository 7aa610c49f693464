// Package session tracks revoked session tokens so that logout takes
// effect before the token expires.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:revoked:"

type Store struct {
	client *redis.Client
}

// NewStore returns a Store backed by client. A nil client yields a store
// that never reports a token as revoked.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(tokenID string) string {
	return keyPrefix + tokenID
}

// Revoke marks tokenID as revoked until expiresAt.
func (s *Store) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s == nil || s.client == nil || tokenID == "" {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s == nil || s.client == nil || tokenID == "" {
		return false, nil
	}

	err := s.client.Get(ctx, key(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}
