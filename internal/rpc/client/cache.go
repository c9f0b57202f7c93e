package client

import (
	"context"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/google/uuid"
)

// UserSummaryCache and BookSummaryCache match the redis store. Cache
// failures never surface to callers; the underlying directory answers.
type UserSummaryCache interface {
	GetUser(ctx context.Context, id string) (*domain.UserSummary, error)
	PutUser(ctx context.Context, s *domain.UserSummary) error
}

type BookSummaryCache interface {
	GetBook(ctx context.Context, id string) (*domain.BookSummary, error)
	PutBook(ctx context.Context, s *domain.BookSummary) error
}

// CachedUserDirectory wraps a UserDirectory with a read-through cache.
type CachedUserDirectory struct {
	next   *UserDirectory
	cache  UserSummaryCache
	logger logger.Logger
}

func NewCachedUserDirectory(next *UserDirectory, cache UserSummaryCache, log logger.Logger) *CachedUserDirectory {
	return &CachedUserDirectory{next: next, cache: cache, logger: log}
}

func (d *CachedUserDirectory) Lookup(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	if s, err := d.cache.GetUser(ctx, userID.String()); err != nil {
		d.logger.Warn("user summary cache read failed", logger.Error(err))
	} else if s != nil {
		return s, nil
	}

	s, err := d.next.Lookup(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := d.cache.PutUser(ctx, s); err != nil {
		d.logger.Warn("user summary cache write failed", logger.Error(err))
	}
	return s, nil
}

// CachedBookDirectory wraps a BookDirectory with a read-through cache.
type CachedBookDirectory struct {
	next   *BookDirectory
	cache  BookSummaryCache
	logger logger.Logger
}

func NewCachedBookDirectory(next *BookDirectory, cache BookSummaryCache, log logger.Logger) *CachedBookDirectory {
	return &CachedBookDirectory{next: next, cache: cache, logger: log}
}

func (d *CachedBookDirectory) Lookup(ctx context.Context, bookID uuid.UUID) (*domain.BookSummary, error) {
	if s, err := d.cache.GetBook(ctx, bookID.String()); err != nil {
		d.logger.Warn("book summary cache read failed", logger.Error(err))
	} else if s != nil {
		return s, nil
	}

	s, err := d.next.Lookup(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if err := d.cache.PutBook(ctx, s); err != nil {
		d.logger.Warn("book summary cache write failed", logger.Error(err))
	}
	return s, nil
}
