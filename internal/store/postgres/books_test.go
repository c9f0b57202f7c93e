package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
)

func seedBooks() []domain.Book {
	return []domain.Book{
		{
			Title:     "Sapiens",
			Author:    &domain.Author{Name: "Yuval Noah Harari"},
			Category:  &domain.Category{Name: "History"},
			Publisher: &domain.Publisher{Name: "Harper"},
		},
		{
			Title:    "Homo Deus",
			Author:   &domain.Author{Name: "Yuval Noah Harari"},
			Category: &domain.Category{Name: "History"},
		},
		{
			Title:  "Dune",
			Author: &domain.Author{Name: "Frank Herbert"},
		},
	}
}

func TestBookStoreImport(t *testing.T) {
	store := NewBookStore(openTestDB(t))
	ctx := context.Background()

	imported, err := store.Import(ctx, seedBooks())
	require.NoError(t, err)
	assert.Equal(t, 3, imported)

	t.Run("re-import is idempotent", func(t *testing.T) {
		imported, err := store.Import(ctx, seedBooks())
		require.NoError(t, err)
		assert.Equal(t, 0, imported)
	})

	t.Run("authors are deduplicated by name", func(t *testing.T) {
		books, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 3)

		authorIDs := map[string]uuid.UUID{}
		for _, b := range books {
			require.NotNil(t, b.Author)
			if prev, seen := authorIDs[b.Author.Name]; seen {
				assert.Equal(t, prev, b.Author.ID)
			}
			authorIDs[b.Author.Name] = b.Author.ID
		}
		assert.Len(t, authorIDs, 2)
	})
}

func TestBookStoreGetDetails(t *testing.T) {
	store := NewBookStore(openTestDB(t))
	ctx := context.Background()
	_, err := store.Import(ctx, seedBooks())
	require.NoError(t, err)

	books, err := store.List(ctx)
	require.NoError(t, err)
	// List orders by title; Dune first.
	require.Equal(t, "Dune", books[0].Title)

	got, err := store.GetDetails(ctx, books[0].ID)
	require.NoError(t, err)
	sum := got.Summary()
	assert.Equal(t, "Dune", sum.Title)
	assert.Equal(t, "Frank Herbert", sum.Author)
	assert.Empty(t, sum.Publisher)

	_, err = store.GetDetails(ctx, uuid.New())
	assert.True(t, domain.IsNotFound(err))
}

func TestUserStore(t *testing.T) {
	store := NewUserStore(openTestDB(t))
	ctx := context.Background()

	user := &domain.User{
		Username:     "ada",
		Email:        "ada@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "x",
	}
	require.NoError(t, store.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	t.Run("duplicate username", func(t *testing.T) {
		err := store.Create(ctx, &domain.User{
			Username: "ada", Email: "other@example.com", PasswordHash: "x",
		})
		assert.True(t, domain.IsDuplicate(err))
	})

	t.Run("lookups", func(t *testing.T) {
		byID, err := store.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada", byID.Username)

		byName, err := store.GetByUsername(ctx, "ada")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		_, err = store.GetByUsername(ctx, "ghost")
		assert.True(t, domain.IsNotFound(err))
	})
}
