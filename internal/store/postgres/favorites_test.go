package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

func TestFavoriteStoreCreate(t *testing.T) {
	store := NewFavoriteStore(openTestDB(t))
	ctx := context.Background()
	userID, bookID := uuid.New(), uuid.New()

	fav := &domain.Favorite{UserID: userID, BookID: bookID}
	require.NoError(t, store.Create(ctx, fav))
	assert.NotEqual(t, uuid.Nil, fav.ID)

	t.Run("unique index rejects the pair", func(t *testing.T) {
		err := store.Create(ctx, &domain.Favorite{UserID: userID, BookID: bookID})
		assert.True(t, domain.IsDuplicate(err))
	})

	t.Run("exists sees the row", func(t *testing.T) {
		ok, err := store.Exists(ctx, userID, bookID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, userID, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("action log has the add", func(t *testing.T) {
		logs, err := store.Actions(ctx, userID)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, domain.ActionAdded, logs[0].Action)
		assert.Equal(t, bookID, logs[0].BookID)
	})
}

func TestFavoriteStoreReads(t *testing.T) {
	store := NewFavoriteStore(openTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	first := &domain.Favorite{UserID: userID, BookID: uuid.New()}
	second := &domain.Favorite{UserID: userID, BookID: uuid.New()}
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	t.Run("by id", func(t *testing.T) {
		got, err := store.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.BookID, got.BookID)

		_, err = store.GetByID(ctx, uuid.New())
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("by user", func(t *testing.T) {
		favs, err := store.GetByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, favs, 2)

		favs, err = store.GetByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, favs)
	})

	t.Run("by pair", func(t *testing.T) {
		got, err := store.GetByUserAndBook(ctx, userID, second.BookID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)

		_, err = store.GetByUserAndBook(ctx, userID, uuid.New())
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestFavoriteStoreReplaceBook(t *testing.T) {
	store := NewFavoriteStore(openTestDB(t))
	ctx := context.Background()
	userID, oldBook, newBook := uuid.New(), uuid.New(), uuid.New()
	fav := &domain.Favorite{UserID: userID, BookID: oldBook}
	require.NoError(t, store.Create(ctx, fav))

	got, err := store.ReplaceBook(ctx, fav.ID, newBook)
	require.NoError(t, err)
	assert.Equal(t, newBook, got.BookID)

	logs, err := store.Actions(ctx, userID)
	require.NoError(t, err)
	// add, then remove(old)+add(new)
	require.Len(t, logs, 3)

	t.Run("swap to an already-favorited book conflicts", func(t *testing.T) {
		other := &domain.Favorite{UserID: userID, BookID: oldBook}
		require.NoError(t, store.Create(ctx, other))

		_, err := store.ReplaceBook(ctx, other.ID, newBook)
		assert.True(t, domain.IsDuplicate(err))

		// The failed swap rolled back; the row is unchanged.
		reread, err := store.GetByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, oldBook, reread.BookID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.ReplaceBook(ctx, uuid.New(), newBook)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestFavoriteStoreDelete(t *testing.T) {
	store := NewFavoriteStore(openTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	fav := &domain.Favorite{UserID: userID, BookID: uuid.New()}
	require.NoError(t, store.Create(ctx, fav))

	got, err := store.Delete(ctx, fav.ID)
	require.NoError(t, err)
	assert.Equal(t, fav.ID, got.ID)

	// Second delete of the same id is a clean not-found.
	_, err = store.Delete(ctx, fav.ID)
	assert.True(t, domain.IsNotFound(err))

	logs, err := store.Actions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, domain.ActionRemoved, logs[1].Action)

	t.Run("pair can be favorited again", func(t *testing.T) {
		err := store.Create(ctx, &domain.Favorite{UserID: userID, BookID: got.BookID})
		assert.NoError(t, err)
	})
}
