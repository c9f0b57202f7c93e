package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

type fakeStore struct {
	favorites map[uuid.UUID]*domain.Favorite
	actions   []domain.FavoriteActionLog

	createErr error
	existsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{favorites: make(map[uuid.UUID]*domain.Favorite)}
}

func (s *fakeStore) Exists(_ context.Context, userID, bookID uuid.UUID) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, f := range s.favorites {
		if f.UserID == userID && f.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) Create(_ context.Context, fav *domain.Favorite) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, f := range s.favorites {
		if f.UserID == fav.UserID && f.BookID == fav.BookID {
			return &domain.DuplicateError{Entity: "favorite"}
		}
	}
	fav.ID = uuid.New()
	s.favorites[fav.ID] = fav
	s.actions = append(s.actions, domain.FavoriteActionLog{
		UserID: fav.UserID, BookID: fav.BookID, Action: domain.ActionAdded,
	})
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Favorite, error) {
	if f, ok := s.favorites[id]; ok {
		return f, nil
	}
	return nil, &domain.NotFoundError{Entity: "favorite", ID: id.String()}
}

func (s *fakeStore) GetByUser(_ context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	var out []domain.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (s *fakeStore) GetByUserAndBook(_ context.Context, userID, bookID uuid.UUID) (*domain.Favorite, error) {
	for _, f := range s.favorites {
		if f.UserID == userID && f.BookID == bookID {
			return f, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "favorite"}
}

func (s *fakeStore) ReplaceBook(_ context.Context, id, newBookID uuid.UUID) (*domain.Favorite, error) {
	f, ok := s.favorites[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "favorite", ID: id.String()}
	}
	old := f.BookID
	f.BookID = newBookID
	s.actions = append(s.actions,
		domain.FavoriteActionLog{UserID: f.UserID, BookID: old, Action: domain.ActionRemoved},
		domain.FavoriteActionLog{UserID: f.UserID, BookID: newBookID, Action: domain.ActionAdded},
	)
	return f, nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) (*domain.Favorite, error) {
	f, ok := s.favorites[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "favorite", ID: id.String()}
	}
	delete(s.favorites, id)
	s.actions = append(s.actions, domain.FavoriteActionLog{
		UserID: f.UserID, BookID: f.BookID, Action: domain.ActionRemoved,
	})
	return f, nil
}

func (s *fakeStore) Actions(_ context.Context, userID uuid.UUID) ([]domain.FavoriteActionLog, error) {
	var out []domain.FavoriteActionLog
	for _, a := range s.actions {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUsers struct {
	known map[uuid.UUID]*domain.UserSummary
	err   error
}

func (f *fakeUsers) Lookup(_ context.Context, id uuid.UUID) (*domain.UserSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.known[id]; ok {
		return u, nil
	}
	return nil, &domain.NotFoundError{Entity: "user", ID: id.String()}
}

type fakeBooks struct {
	known map[uuid.UUID]*domain.BookSummary
	err   error
}

func (f *fakeBooks) Lookup(_ context.Context, id uuid.UUID) (*domain.BookSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if b, ok := f.known[id]; ok {
		return b, nil
	}
	return nil, &domain.NotFoundError{Entity: "book", ID: id.String()}
}

type fixture struct {
	store  *fakeStore
	users  *fakeUsers
	books  *fakeBooks
	svc    *Service
	userID uuid.UUID
	bookID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	userID := uuid.New()
	bookID := uuid.New()
	store := newFakeStore()
	users := &fakeUsers{known: map[uuid.UUID]*domain.UserSummary{
		userID: {UserID: userID, FirstName: "Ada", LastName: "Lovelace"},
	}}
	books := &fakeBooks{known: map[uuid.UUID]*domain.BookSummary{
		bookID: {BookID: bookID, Title: "Sapiens", Author: "Harari"},
	}}
	return &fixture{
		store:  store,
		users:  users,
		books:  books,
		svc:    New(store, users, books, logger.New("error", false)),
		userID: userID,
		bookID: bookID,
	}
}

func TestAdd(t *testing.T) {
	t.Run("creates and enriches", func(t *testing.T) {
		fx := newFixture(t)

		got, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, fx.userID, got.UserID)
		assert.Equal(t, fx.bookID, got.BookID)
		require.NotNil(t, got.User)
		assert.Equal(t, "Ada", got.User.FirstName)
		require.NotNil(t, got.Book)
		assert.Equal(t, "Sapiens", got.Book.Title)
		assert.Len(t, fx.store.favorites, 1)
	})

	t.Run("rejects duplicate pair", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		_, err = fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		assert.True(t, domain.IsDuplicate(err))
		assert.Len(t, fx.store.favorites, 1)
	})

	t.Run("maps insert race to duplicate", func(t *testing.T) {
		fx := newFixture(t)
		fx.store.createErr = &domain.DuplicateError{Entity: "favorite"}

		_, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		assert.True(t, domain.IsDuplicate(err))
	})

	t.Run("unknown user fails but keeps the row", func(t *testing.T) {
		fx := newFixture(t)
		unknown := uuid.New()

		_, err := fx.svc.Add(context.Background(), unknown, fx.bookID)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		// The commit happened before enrichment; the row must survive.
		assert.Len(t, fx.store.favorites, 1)
	})

	t.Run("user service down is not a not-found", func(t *testing.T) {
		fx := newFixture(t)
		fx.users.err = &domain.RemoteUnavailableError{Service: "auth", Err: errors.New("dial refused")}

		_, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.Error(t, err)
		assert.True(t, domain.IsRemoteUnavailable(err))
		assert.False(t, domain.IsNotFound(err))
		assert.Len(t, fx.store.favorites, 1)
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		fx := newFixture(t)

		_, err := fx.svc.Add(context.Background(), uuid.Nil, fx.bookID)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)

		_, err = fx.svc.Add(context.Background(), fx.userID, uuid.Nil)
		require.ErrorAs(t, err, &ve)
		assert.Empty(t, fx.store.favorites)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("enriches both summaries", func(t *testing.T) {
		fx := newFixture(t)
		fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		got, err := fx.svc.GetByID(context.Background(), fav.ID)
		require.NoError(t, err)
		require.NotNil(t, got.User)
		require.NotNil(t, got.Book)
	})

	t.Run("books service down leaves book null", func(t *testing.T) {
		fx := newFixture(t)
		fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		fx.books.err = &domain.RemoteUnavailableError{Service: "books", Err: errors.New("dial refused")}

		got, err := fx.svc.GetByID(context.Background(), fav.ID)
		require.NoError(t, err)
		require.NotNil(t, got.User)
		assert.Nil(t, got.Book)
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := newFixture(t)

		_, err := fx.svc.GetByID(context.Background(), uuid.New())
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestGetByUser(t *testing.T) {
	t.Run("auth down degrades every user summary", func(t *testing.T) {
		fx := newFixture(t)
		other := uuid.New()
		fx.books.known[other] = &domain.BookSummary{BookID: other, Title: "Dune"}
		_, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)
		_, err = fx.svc.Add(context.Background(), fx.userID, other)
		require.NoError(t, err)

		fx.users.err = &domain.RemoteUnavailableError{Service: "auth", Err: errors.New("dial refused")}

		got, err := fx.svc.GetByUser(context.Background(), fx.userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, f := range got {
			assert.Nil(t, f.User)
			assert.NotNil(t, f.Book)
		}
	})

	t.Run("empty list without remote calls", func(t *testing.T) {
		fx := newFixture(t)
		fx.users.err = errors.New("must not be called")

		got, err := fx.svc.GetByUser(context.Background(), fx.userID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestReplaceBook(t *testing.T) {
	t.Run("swaps to a known book", func(t *testing.T) {
		fx := newFixture(t)
		next := uuid.New()
		fx.books.known[next] = &domain.BookSummary{BookID: next, Title: "Dune"}
		fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		got, err := fx.svc.ReplaceBook(context.Background(), fav.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.BookID)
		require.NotNil(t, got.Book)
		assert.Equal(t, "Dune", got.Book.Title)
	})

	t.Run("refuses an unknown book", func(t *testing.T) {
		fx := newFixture(t)
		fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		_, err = fx.svc.ReplaceBook(context.Background(), fav.ID, uuid.New())
		assert.True(t, domain.IsNotFound(err))
		assert.Equal(t, fx.bookID, fx.store.favorites[fav.ID].BookID)
	})
}

func TestDelete(t *testing.T) {
	t.Run("returns enriched snapshot of the deleted row", func(t *testing.T) {
		fx := newFixture(t)
		fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		got, err := fx.svc.Delete(context.Background(), fav.ID)
		require.NoError(t, err)
		assert.Equal(t, fav.ID, got.ID)
		require.NotNil(t, got.User)
		assert.Equal(t, "Ada", got.User.FirstName)
		require.NotNil(t, got.Book)
		assert.Equal(t, "Sapiens", got.Book.Title)
		assert.Empty(t, fx.store.favorites)

		_, err = fx.svc.Delete(context.Background(), fav.ID)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("still deletes when a directory is down", func(t *testing.T) {
		fx := newFixture(t)
		fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
		require.NoError(t, err)

		fx.books.err = &domain.RemoteUnavailableError{Service: "books", Err: errors.New("dial refused")}
		got, err := fx.svc.Delete(context.Background(), fav.ID)
		require.NoError(t, err)
		require.NotNil(t, got.User)
		assert.Nil(t, got.Book)
		assert.Empty(t, fx.store.favorites)
	})
}

func TestActions(t *testing.T) {
	fx := newFixture(t)
	fav, err := fx.svc.Add(context.Background(), fx.userID, fx.bookID)
	require.NoError(t, err)
	_, err = fx.svc.Delete(context.Background(), fav.ID)
	require.NoError(t, err)

	logs, err := fx.svc.Actions(context.Background(), fx.userID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, domain.ActionAdded, logs[0].Action)
	assert.Equal(t, domain.ActionRemoved, logs[1].Action)
}
