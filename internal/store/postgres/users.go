package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

// UserStore handles account rows for the auth service.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new user store.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the user. Username and email collisions surface as
// DuplicateError.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.DuplicateError{Entity: "user", Key: user.Username}
		}
		return &domain.InternalError{Err: fmt.Errorf("create user: %w", err)}
	}
	return nil
}

// GetByID fetches one user by id.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "user", ID: id.String()}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("get user: %w", err)}
	}
	return &user, nil
}

// GetByUsername fetches one user by username, for credential checks.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "user", ID: username}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("get user by username: %w", err)}
	}
	return &user, nil
}
