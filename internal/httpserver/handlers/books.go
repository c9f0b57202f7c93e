package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

// BookReader is the slice of the book store the HTTP surface needs.
type BookReader interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*domain.Book, error)
}

// Books exposes the catalog over HTTP.
type Books struct {
	store  BookReader
	logger logger.Logger
}

func NewBooks(store BookReader, log logger.Logger) *Books {
	return &Books{store: store, logger: log}
}

// Routes mounts the books endpoints on the given router.
func (h *Books) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{bookID}", h.get)
}

func (h *Books) list(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	out := make([]domain.BookSummary, len(books))
	for i := range books {
		out[i] = *books[i].Summary()
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Books) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bookID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	book, err := h.store.GetDetails(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, book.Summary())
}
