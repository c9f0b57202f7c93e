package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the canonical local record of a user/book bookmark.
//
// It is owned by the favorites service. User and book are references into
// other services; nothing beyond their ids is stored locally.
//
// A Favorite is uniquely identified by id, and the (UserID, BookID) pair is
// unique among live rows.
type Favorite struct {
	// ID is the canonical opaque identifier.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// UserID references the owning user in the auth service.
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_book_favorite"`

	// BookID references a book in the books service.
	BookID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_book_favorite"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Favorite action kinds recorded in the action log.
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// FavoriteActionLog is an append-only trail of favorite lifecycle
// transitions. Entries are written once and never mutated or deleted.
type FavoriteActionLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BookID    uuid.UUID `gorm:"type:uuid;not null"`
	Action    string    `gorm:"not null"`
	CreatedAt time.Time
}

// UserSummary is a read-only projection of a user, fetched from the auth
// service at enrichment time.
type UserSummary struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// BookSummary is a read-only projection of a book, fetched from the books
// service at enrichment time.
type BookSummary struct {
	BookID    uuid.UUID `json:"book_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Publisher string    `json:"publisher"`
}

// EnrichedFavorite is the composite response assembled by the orchestration
// service: one local Favorite plus the two remote summaries. Either summary
// may be nil when the owning remote service could not produce the data.
// It lives for a single request/response cycle and is never persisted.
type EnrichedFavorite struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	BookID    uuid.UUID    `json:"book_id"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user_details,omitempty"`
	Book      *BookSummary `json:"book_details,omitempty"`
}
