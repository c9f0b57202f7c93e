package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/favorites"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

// Favorites exposes the favorites service over HTTP.
type Favorites struct {
	svc    *favorites.Service
	logger logger.Logger
}

func NewFavorites(svc *favorites.Service, log logger.Logger) *Favorites {
	return &Favorites{svc: svc, logger: log}
}

// Routes mounts the favorites endpoints on the given router.
func (h *Favorites) Routes(r chi.Router) {
	r.Post("/", h.add)
	r.Get("/{favoriteID}", h.getByID)
	r.Patch("/{favoriteID}", h.replaceBook)
	r.Delete("/{favoriteID}", h.delete)
	r.Get("/user/{userID}", h.getByUser)
	r.Get("/user/{userID}/actions", h.actions)
	r.Get("/user/{userID}/book/{bookID}", h.getByUserAndBook)
}

type addFavoriteRequest struct {
	UserID uuid.UUID `json:"user_id"`
	BookID uuid.UUID `json:"book_id"`
}

func (h *Favorites) add(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	fav, err := h.svc.Add(r.Context(), req.UserID, req.BookID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *Favorites) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "favoriteID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	fav, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *Favorites) getByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	favs, err := h.svc.GetByUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (h *Favorites) getByUserAndBook(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	bookID, err := pathUUID(r, "bookID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	fav, err := h.svc.GetByUserAndBook(r.Context(), userID, bookID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

type replaceBookRequest struct {
	BookID uuid.UUID `json:"book_id"`
}

func (h *Favorites) replaceBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "favoriteID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var req replaceBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	fav, err := h.svc.ReplaceBook(r.Context(), id, req.BookID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *Favorites) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "favoriteID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	fav, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *Favorites) actions(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	logs, err := h.svc.Actions(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// pathUUID parses one uuid path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, &domain.ValidationError{Field: name, Reason: "must be a uuid"}
	}
	return id, nil
}
