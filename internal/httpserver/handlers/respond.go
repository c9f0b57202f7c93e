package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP status codes. The
// 404/503 split matters most: a missing entity and an unreachable service
// must not look alike to callers.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var (
		ve *domain.ValidationError
		de *domain.DuplicateError
		nf *domain.NotFoundError
		ru *domain.RemoteUnavailableError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error()})
	case errors.As(err, &de):
		writeJSON(w, http.StatusConflict, errorResponse{Error: de.Error()})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: nf.Error()})
	case errors.As(err, &ru):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: ru.Service + " service unavailable"})
	default:
		log.Error("request failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
