package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book and its related reference tables belong to the books service. The
// details lookup reads a book together with author, category and publisher
// in a single query and flattens them into a BookSummary.

type Author struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`
}

type Publisher struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`
}

type Book struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	AuthorID    uuid.UUID `gorm:"type:uuid"`
	CategoryID  uuid.UUID `gorm:"type:uuid"`
	PublisherID uuid.UUID `gorm:"type:uuid"`
	Author      *Author   `gorm:"foreignKey:AuthorID"`
	Category    *Category
	Publisher   *Publisher
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary flattens the book and its preloaded relations. Missing relations
// collapse to empty strings rather than failing the lookup.
func (b *Book) Summary() *BookSummary {
	s := &BookSummary{
		BookID: b.ID,
		Title:  b.Title,
	}
	if b.Author != nil {
		s.Author = b.Author.Name
	}
	if b.Category != nil {
		s.Category = b.Category.Name
	}
	if b.Publisher != nil {
		s.Publisher = b.Publisher.Name
	}
	return s
}
