package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/token"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RefreshStore keeps one opaque refresh token per user.
type RefreshStore interface {
	Save(ctx context.Context, userID, token string) error
	Verify(ctx context.Context, userID, token string) (bool, error)
	Revoke(ctx context.Context, userID string) error
}

// EventPublisher emits domain events for other services.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// TokenPair is what a successful register/login/refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Service owns user accounts and credentials.
type Service struct {
	users      UserStore
	refresh    RefreshStore
	tokens     *token.Manager
	publisher  EventPublisher
	routingKey string
	logger     logger.Logger
}

func New(users UserStore, refresh RefreshStore, tokens *token.Manager, publisher EventPublisher, routingKey string, log logger.Logger) *Service {
	return &Service{
		users:      users,
		refresh:    refresh,
		tokens:     tokens,
		publisher:  publisher,
		routingKey: routingKey,
		logger:     log,
	}
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (in RegisterInput) validate() error {
	if in.Username == "" {
		return &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if in.Email == "" {
		return &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if len(in.Password) < 8 {
		return &domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	return nil
}

// Register creates the account, emits UserRegistered and logs the user in.
//
// The event is published after the commit on a best-effort basis: a broker
// outage must not undo a created account, so a publish failure is logged
// and the registration still succeeds. The welcome email is the only thing
// lost.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, *TokenPair, error) {
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, &domain.InternalError{Err: fmt.Errorf("hash password: %w", err)}
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	event := domain.NewUserRegistered(user.ID.String(), user.Email, user.Username)
	if err := s.publisher.Publish(ctx, s.routingKey, event); err != nil {
		s.logger.Error("failed to publish UserRegistered",
			logger.String("user_id", user.ID.String()),
			logger.Error(err),
		)
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login checks credentials and returns a fresh token pair. Unknown
// username and wrong password collapse into the same error so the endpoint
// cannot be used to probe for accounts.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.ValidationError{Field: "credentials", Reason: "invalid username or password"}
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &domain.ValidationError{Field: "credentials", Reason: "invalid username or password"}
	}
	return s.issuePair(ctx, user)
}

// Refresh exchanges a valid refresh token for a new pair. The old refresh
// token is invalidated by the overwrite in Save.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (*TokenPair, error) {
	ok, err := s.refresh.Verify(ctx, userID.String(), refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ValidationError{Field: "refresh_token", Reason: "invalid or expired"}
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.issuePair(ctx, user)
}

// Logout revokes the user's refresh token. Issued access tokens stay valid
// until they expire.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.refresh.Revoke(ctx, userID.String())
}

func (s *Service) issuePair(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	refresh, err := newRefreshToken()
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	if err := s.refresh.Save(ctx, user.ID.String(), refresh); err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
