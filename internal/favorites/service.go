package favorites

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

// Store is the persistence surface the service needs.
type Store interface {
	Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	Create(ctx context.Context, fav *domain.Favorite) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error)
	GetByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.Favorite, error)
	ReplaceBook(ctx context.Context, id, newBookID uuid.UUID) (*domain.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	Actions(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteActionLog, error)
}

// UserLookup and BookLookup resolve cross-service summaries.
type UserLookup interface {
	Lookup(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)
}

type BookLookup interface {
	Lookup(ctx context.Context, bookID uuid.UUID) (*domain.BookSummary, error)
}

// Service composes local favorite rows with remote user and book summaries.
//
// Writes are strict: Add refuses to report success against an unknown user
// or book, and a write never claims more than the database committed. Reads
// are lenient: a favorite is returned even when a remote service is down,
// with the affected summary left null. The asymmetry is deliberate; a read
// path that goes dark whenever a peer service restarts would make the
// favorite list unavailable exactly when it is most useful.
type Service struct {
	store  Store
	users  UserLookup
	books  BookLookup
	logger logger.Logger
}

func New(store Store, users UserLookup, books BookLookup, log logger.Logger) *Service {
	return &Service{store: store, users: users, books: books, logger: log}
}

// Add creates a favorite for the pair and returns it enriched.
//
// The duplicate pre-check makes the common conflict cheap and keeps the
// action log clean; the unique index inside Create still catches the race
// where two requests pass the check together. Enrichment runs after the
// commit: a missing user or book surfaces as NotFoundError and an
// unreachable service as RemoteUnavailableError, but in both cases the
// committed row stays. The caller can re-read it once the remote side
// recovers.
func (s *Service) Add(ctx context.Context, userID, bookID uuid.UUID) (*domain.EnrichedFavorite, error) {
	if userID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if bookID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "book_id", Reason: "must not be empty"}
	}

	exists, err := s.store.Exists(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateError{
			Entity: "favorite",
			Key:    "user " + userID.String() + " and book " + bookID.String(),
		}
	}

	fav := &domain.Favorite{UserID: userID, BookID: bookID}
	if err := s.store.Create(ctx, fav); err != nil {
		return nil, err
	}

	user, book, err := s.enrichStrict(ctx, userID, bookID)
	if err != nil {
		s.logger.Warn("favorite created but enrichment failed",
			logger.String("favorite_id", fav.ID.String()),
			logger.Error(err),
		)
		return nil, err
	}
	return enriched(fav, user, book), nil
}

// GetByID returns one favorite with whatever summaries are reachable.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.EnrichedFavorite, error) {
	fav, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, book := s.enrichLenient(ctx, fav.UserID, fav.BookID)
	return enriched(fav, user, book), nil
}

// GetByUser returns all favorites of one user, newest first. The user
// summary is resolved once and shared across the list; book summaries are
// fetched concurrently.
func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.EnrichedFavorite, error) {
	favs, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var user *domain.UserSummary
	if len(favs) > 0 {
		user = s.lookupUserLenient(ctx, userID)
	}

	out := make([]domain.EnrichedFavorite, len(favs))
	var g errgroup.Group
	g.SetLimit(8)
	for i := range favs {
		g.Go(func() error {
			book := s.lookupBookLenient(ctx, favs[i].BookID)
			out[i] = *enriched(&favs[i], user, book)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // goroutines never return errors
	return out, nil
}

// GetByUserAndBook returns the favorite for one (user, book) pair.
func (s *Service) GetByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.EnrichedFavorite, error) {
	fav, err := s.store.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	user, book := s.enrichLenient(ctx, fav.UserID, fav.BookID)
	return enriched(fav, user, book), nil
}

// ReplaceBook swaps the book a favorite points at and returns the updated
// favorite. The swap itself is strict (the new book must exist); the
// returned summaries are lenient like any other read.
func (s *Service) ReplaceBook(ctx context.Context, id, newBookID uuid.UUID) (*domain.EnrichedFavorite, error) {
	if newBookID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "book_id", Reason: "must not be empty"}
	}
	if _, err := s.books.Lookup(ctx, newBookID); err != nil {
		return nil, err
	}

	fav, err := s.store.ReplaceBook(ctx, id, newBookID)
	if err != nil {
		return nil, err
	}
	user, book := s.enrichLenient(ctx, fav.UserID, fav.BookID)
	return enriched(fav, user, book), nil
}

// Delete removes a favorite and returns the enriched pre-delete snapshot,
// with summaries resolved leniently like any other read.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.EnrichedFavorite, error) {
	fav, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	user, book := s.enrichLenient(ctx, fav.UserID, fav.BookID)
	return enriched(fav, user, book), nil
}

// Actions returns the append-only action trail of one user, oldest first.
func (s *Service) Actions(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteActionLog, error) {
	return s.store.Actions(ctx, userID)
}

// enrichStrict runs both lookups concurrently and fails if either does.
// The goroutines do not share a cancelable group context: a failing user
// lookup must not abort the book lookup mid-flight, or the first error
// reported would depend on scheduling.
func (s *Service) enrichStrict(ctx context.Context, userID, bookID uuid.UUID) (*domain.UserSummary, *domain.BookSummary, error) {
	var (
		g    errgroup.Group
		user *domain.UserSummary
		book *domain.BookSummary
	)
	g.Go(func() error {
		var err error
		user, err = s.users.Lookup(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		book, err = s.books.Lookup(ctx, bookID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return user, book, nil
}

// enrichLenient runs both lookups concurrently; failures degrade to nil.
func (s *Service) enrichLenient(ctx context.Context, userID, bookID uuid.UUID) (*domain.UserSummary, *domain.BookSummary) {
	var (
		g    errgroup.Group
		user *domain.UserSummary
		book *domain.BookSummary
	)
	g.Go(func() error {
		user = s.lookupUserLenient(ctx, userID)
		return nil
	})
	g.Go(func() error {
		book = s.lookupBookLenient(ctx, bookID)
		return nil
	})
	g.Wait() //nolint:errcheck // goroutines never return errors
	return user, book
}

func (s *Service) lookupUserLenient(ctx context.Context, userID uuid.UUID) *domain.UserSummary {
	user, err := s.users.Lookup(ctx, userID)
	if err != nil {
		s.logger.Warn("user summary unavailable",
			logger.String("user_id", userID.String()),
			logger.Error(err),
		)
		return nil
	}
	return user
}

func (s *Service) lookupBookLenient(ctx context.Context, bookID uuid.UUID) *domain.BookSummary {
	book, err := s.books.Lookup(ctx, bookID)
	if err != nil {
		s.logger.Warn("book summary unavailable",
			logger.String("book_id", bookID.String()),
			logger.Error(err),
		)
		return nil
	}
	return book
}

func enriched(fav *domain.Favorite, user *domain.UserSummary, book *domain.BookSummary) *domain.EnrichedFavorite {
	return &domain.EnrichedFavorite{
		ID:        fav.ID,
		UserID:    fav.UserID,
		BookID:    fav.BookID,
		CreatedAt: fav.CreatedAt,
		User:      user,
		Book:      book,
	}
}
