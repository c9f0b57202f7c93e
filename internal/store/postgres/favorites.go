package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

// FavoriteStore handles favorite rows and their append-only action log.
// Every mutating operation runs inside a serializable transaction; the
// unique (user_id, book_id) index is the authoritative duplicate guard.
type FavoriteStore struct {
	db *gorm.DB
}

// NewFavoriteStore creates a new favorite store.
func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

var serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

// Exists reports whether a favorite already exists for the pair. It is an
// advisory pre-check; Create remains safe without it.
func (s *FavoriteStore) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	if err != nil {
		return false, &domain.InternalError{Err: fmt.Errorf("count favorite: %w", err)}
	}
	return count > 0, nil
}

// Create inserts the favorite and appends the "added" action log entry in
// one transaction. A uniqueness violation surfaces as DuplicateError; any
// other storage failure rolls back and surfaces as InternalError.
func (s *FavoriteStore) Create(ctx context.Context, fav *domain.Favorite) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fav).Error; err != nil {
			return err
		}
		return tx.Create(&domain.FavoriteActionLog{
			UserID: fav.UserID,
			BookID: fav.BookID,
			Action: domain.ActionAdded,
		}).Error
	}, serializable)

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.DuplicateError{
				Entity: "favorite",
				Key:    fmt.Sprintf("user %s and book %s", fav.UserID, fav.BookID),
			}
		}
		return &domain.InternalError{Err: fmt.Errorf("create favorite: %w", err)}
	}
	return nil
}

// GetByID fetches one favorite by its id.
func (s *FavoriteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	var fav domain.Favorite
	err := s.db.WithContext(ctx).First(&fav, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "favorite", ID: id.String()}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("get favorite: %w", err)}
	}
	return &fav, nil
}

// GetByUser fetches all favorites of one user, newest first.
func (s *FavoriteStore) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	var favs []domain.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, &domain.InternalError{Err: fmt.Errorf("list favorites: %w", err)}
	}
	return favs, nil
}

// GetByUserAndBook fetches the favorite for a specific (user, book) pair.
func (s *FavoriteStore) GetByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.Favorite, error) {
	var fav domain.Favorite
	err := s.db.WithContext(ctx).
		First(&fav, "user_id = ? AND book_id = ?", userID, bookID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{
				Entity: "favorite",
				ID:     fmt.Sprintf("user %s and book %s", userID, bookID),
			}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("get favorite by pair: %w", err)}
	}
	return &fav, nil
}

// ReplaceBook swaps the referenced book of an existing favorite. The swap,
// its duplicate guard and the action log entries commit atomically.
func (s *FavoriteStore) ReplaceBook(ctx context.Context, id, newBookID uuid.UUID) (*domain.Favorite, error) {
	var fav domain.Favorite
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fav, "id = ?", id).Error; err != nil {
			return err
		}
		oldBookID := fav.BookID
		if oldBookID == newBookID {
			return nil
		}
		fav.BookID = newBookID
		if err := tx.Save(&fav).Error; err != nil {
			return err
		}
		if err := tx.Create(&domain.FavoriteActionLog{
			UserID: fav.UserID,
			BookID: oldBookID,
			Action: domain.ActionRemoved,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.FavoriteActionLog{
			UserID: fav.UserID,
			BookID: newBookID,
			Action: domain.ActionAdded,
		}).Error
	}, serializable)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "favorite", ID: id.String()}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &domain.DuplicateError{
				Entity: "favorite",
				Key:    fmt.Sprintf("user %s and book %s", fav.UserID, newBookID),
			}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("replace favorite book: %w", err)}
	}
	return &fav, nil
}

// Delete removes the favorite and appends the "removed" action log entry in
// one transaction, returning the deleted row. A second delete of the same id
// yields NotFoundError, not a fault.
func (s *FavoriteStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	var fav domain.Favorite
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fav, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Favorite{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Create(&domain.FavoriteActionLog{
			UserID: fav.UserID,
			BookID: fav.BookID,
			Action: domain.ActionRemoved,
		}).Error
	}, serializable)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "favorite", ID: id.String()}
		}
		return nil, &domain.InternalError{Err: fmt.Errorf("delete favorite: %w", err)}
	}
	return &fav, nil
}

// Actions returns the action log entries of one user, oldest first.
func (s *FavoriteStore) Actions(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteActionLog, error) {
	var logs []domain.FavoriteActionLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, &domain.InternalError{Err: fmt.Errorf("list favorite actions: %w", err)}
	}
	return logs, nil
}
