package catalog

import (
	"fmt"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

// Mapper converts catalog entries to domain.Book entities
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapBooks converts a parsed catalog file to []domain.Book. Entries without
// a title or author are skipped; a file that yields nothing is an error so
// a mangled seed does not silently wipe the import.
func (m *Mapper) MapBooks(file *File) ([]domain.Book, error) {
	var books []domain.Book

	for _, entry := range file.Books {
		if entry.Title == "" || entry.Author == "" {
			continue
		}

		book := domain.Book{
			Title:  entry.Title,
			Author: &domain.Author{Name: entry.Author},
		}
		if entry.Category != "" {
			book.Category = &domain.Category{Name: entry.Category}
		}
		if entry.Publisher != "" {
			book.Publisher = &domain.Publisher{Name: entry.Publisher}
		}

		books = append(books, book)
	}

	if len(books) == 0 {
		return nil, fmt.Errorf("no valid books found in catalog file")
	}

	return books, nil
}
