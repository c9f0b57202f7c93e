package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "catalog.yaml")

	yamlContent := `---
books:
  - title: Sapiens
    author: Yuval Noah Harari
    category: History
    publisher: Harper
  - title: Dune
    author: Frank Herbert
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Books) != 2 {
		t.Fatalf("Load() books = %d, want 2", len(file.Books))
	}
	if file.Books[0].Title != "Sapiens" {
		t.Errorf("Load() first title = %q, want %q", file.Books[0].Title, "Sapiens")
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/catalog.yaml")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestMapperMapBooks(t *testing.T) {
	file := &File{
		Books: []BookEntry{
			{Title: "Sapiens", Author: "Yuval Noah Harari", Category: "History", Publisher: "Harper"},
			{Title: "Dune", Author: "Frank Herbert"},
			{Title: "", Author: "Nobody"},
			{Title: "Orphan", Author: ""},
		},
	}

	mapper := NewMapper()
	books, err := mapper.MapBooks(file)
	if err != nil {
		t.Fatalf("MapBooks() error = %v", err)
	}

	if len(books) != 2 {
		t.Fatalf("MapBooks() = %d books, want 2", len(books))
	}
	if books[0].Author == nil || books[0].Author.Name != "Yuval Noah Harari" {
		t.Errorf("MapBooks() first author = %+v", books[0].Author)
	}
	if books[1].Category != nil {
		t.Error("MapBooks() should leave empty category nil")
	}
}

func TestMapperMapBooksEmpty(t *testing.T) {
	mapper := NewMapper()
	_, err := mapper.MapBooks(&File{})
	if err == nil {
		t.Error("MapBooks() with no valid entries should return error")
	}
}
