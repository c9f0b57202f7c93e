package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/bookhive/internal/auth"
	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/mw"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

// Auth exposes account registration and the token endpoints.
type Auth struct {
	svc    *auth.Service
	logger logger.Logger
}

func NewAuth(svc *auth.Service, log logger.Logger) *Auth {
	return &Auth{svc: svc, logger: log}
}

// Routes mounts the public auth endpoints. Logout additionally requires a
// valid access token and is mounted separately by the caller.
func (h *Auth) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/token", h.login)
	r.Post("/refresh", h.refresh)
}

type registerResponse struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Tokens   auth.TokenPair `json:"tokens"`
}

func (h *Auth) register(w http.ResponseWriter, r *http.Request) {
	var in auth.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, h.logger, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	user, pair, err := h.svc.Register(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, registerResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Tokens:   *pair,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Auth) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	pair, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Credential failures are 401, not 400.
		var ve *domain.ValidationError
		if ok := errors.As(err, &ve); ok && ve.Field == "credentials" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: ve.Error()})
			return
		}
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

type refreshRequest struct {
	UserID       uuid.UUID `json:"user_id"`
	RefreshToken string    `json:"refresh_token"`
}

func (h *Auth) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	pair, err := h.svc.Refresh(r.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		var ve *domain.ValidationError
		if ok := errors.As(err, &ve); ok && ve.Field == "refresh_token" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: ve.Error()})
			return
		}
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

// Logout revokes the caller's refresh token. Requires the auth middleware.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}
	if err := h.svc.Logout(r.Context(), userID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
