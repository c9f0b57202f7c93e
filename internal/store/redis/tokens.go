package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps one refresh token per user, expiring with the token.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a refresh token store with the given TTL.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

// Save stores the refresh token for a user, replacing any previous one.
func (s *TokenStore) Save(ctx context.Context, userID, token string) error {
	if err := s.client.Set(ctx, RefreshKey(userID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// Verify reports whether the presented token matches the stored one.
func (s *TokenStore) Verify(ctx context.Context, userID, token string) (bool, error) {
	stored, err := s.client.Get(ctx, RefreshKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get refresh token: %w", err)
	}
	return stored == token, nil
}

// Revoke removes the user's refresh token.
func (s *TokenStore) Revoke(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, RefreshKey(userID)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
