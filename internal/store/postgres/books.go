package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

// BookStore reads the books catalog and applies seed imports.
type BookStore struct {
	db *gorm.DB
}

// NewBookStore creates a new book store.
func NewBookStore(db *gorm.DB) *BookStore {
	return &BookStore{db: db}
}

// GetDetails fetches one book together with its author, category and
// publisher in a single read.
func (s *BookStore) GetDetails(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	var book domain.Book
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Publisher").
		First(&book, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "book", ID: id.String()}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("get book details: %w", err)}
	}
	return &book, nil
}

// List returns the whole catalog with relations preloaded.
func (s *BookStore) List(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Publisher").
		Order("title ASC").
		Find(&books).Error
	if err != nil {
		return nil, &domain.InternalError{Err: fmt.Errorf("list books: %w", err)}
	}
	return books, nil
}

// Import upserts catalog entries. Authors, categories and publishers are
// deduplicated by name; books are matched by title+author so re-importing
// the same catalog file is idempotent.
func (s *BookStore) Import(ctx context.Context, books []domain.Book) (int, error) {
	imported := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range books {
			b := &books[i]
			if b.Author != nil {
				if err := tx.Where("name = ?", b.Author.Name).FirstOrCreate(b.Author).Error; err != nil {
					return err
				}
				b.AuthorID = b.Author.ID
			}
			if b.Category != nil {
				if err := tx.Where("name = ?", b.Category.Name).FirstOrCreate(b.Category).Error; err != nil {
					return err
				}
				b.CategoryID = b.Category.ID
			}
			if b.Publisher != nil {
				if err := tx.Where("name = ?", b.Publisher.Name).FirstOrCreate(b.Publisher).Error; err != nil {
					return err
				}
				b.PublisherID = b.Publisher.ID
			}

			var existing domain.Book
			err := tx.Where("title = ? AND author_id = ?", b.Title, b.AuthorID).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Omit("Author", "Category", "Publisher").Create(b).Error; err != nil {
					return err
				}
				imported++
			case err != nil:
				return err
			default:
				b.ID = existing.ID
			}
		}
		return nil
	})
	if err != nil {
		return 0, &domain.InternalError{Err: fmt.Errorf("import catalog: %w", err)}
	}
	return imported, nil
}
