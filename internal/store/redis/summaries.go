package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

// SummaryCache stores short-lived copies of remote user/book summaries so
// read paths do not hit the remote services on every request. A miss or any
// redis failure simply falls through to a direct fetch; the cache is never
// load-bearing.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a summary cache with the given entry TTL.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// GetUser retrieves a cached user summary. A miss returns (nil, nil).
func (c *SummaryCache) GetUser(ctx context.Context, id string) (*domain.UserSummary, error) {
	data, err := c.client.Get(ctx, UserSummaryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached user summary: %w", err)
	}
	var s domain.UserSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode cached user summary: %w", err)
	}
	return &s, nil
}

// PutUser stores a user summary.
func (c *SummaryCache) PutUser(ctx context.Context, s *domain.UserSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode user summary: %w", err)
	}
	if err := c.client.Set(ctx, UserSummaryKey(s.UserID.String()), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache user summary: %w", err)
	}
	return nil
}

// GetBook retrieves a cached book summary. A miss returns (nil, nil).
func (c *SummaryCache) GetBook(ctx context.Context, id string) (*domain.BookSummary, error) {
	data, err := c.client.Get(ctx, BookSummaryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached book summary: %w", err)
	}
	var s domain.BookSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode cached book summary: %w", err)
	}
	return &s, nil
}

// PutBook stores a book summary.
func (c *SummaryCache) PutBook(ctx context.Context, s *domain.BookSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode book summary: %w", err)
	}
	if err := c.client.Set(ctx, BookSummaryKey(s.BookID.String()), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache book summary: %w", err)
	}
	return nil
}
