package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/token"
)

type fakeUserStore struct {
	byID       map[uuid.UUID]*domain.User
	byUsername map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:       make(map[uuid.UUID]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if _, exists := s.byUsername[user.Username]; exists {
		return &domain.DuplicateError{Entity: "user", Key: user.Username}
	}
	user.ID = uuid.New()
	s.byID[user.ID] = user
	s.byUsername[user.Username] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, &domain.NotFoundError{Entity: "user", ID: id.String()}
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := s.byUsername[username]; ok {
		return u, nil
	}
	return nil, &domain.NotFoundError{Entity: "user", ID: username}
}

type fakeRefreshStore struct {
	tokens map[string]string
}

func (s *fakeRefreshStore) Save(_ context.Context, userID, token string) error {
	s.tokens[userID] = token
	return nil
}

func (s *fakeRefreshStore) Verify(_ context.Context, userID, token string) (bool, error) {
	return s.tokens[userID] == token && token != "", nil
}

func (s *fakeRefreshStore) Revoke(_ context.Context, userID string) error {
	delete(s.tokens, userID)
	return nil
}

type fakePublisher struct {
	events []any
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, _ string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeUserStore, *fakeRefreshStore, *fakePublisher) {
	t.Helper()
	users := newFakeUserStore()
	refresh := &fakeRefreshStore{tokens: make(map[string]string)}
	pub := &fakePublisher{}
	svc := New(users, refresh, token.NewManager("test-secret", time.Minute), pub, "user.registered", logger.New("error", false))
	return svc, users, refresh, pub
}

func validInput() RegisterInput {
	return RegisterInput{
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates user, publishes event, returns tokens", func(t *testing.T) {
		svc, users, refresh, pub := newTestService(t)

		user, pair, err := svc.Register(context.Background(), validInput())
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, "bearer", pair.TokenType)

		require.Len(t, pub.events, 1)
		ev, ok := pub.events[0].(domain.UserRegistered)
		require.True(t, ok)
		assert.Equal(t, domain.EventUserRegistered, ev.EventType)
		assert.Equal(t, user.ID.String(), ev.UserID)
		assert.Equal(t, "ada@example.com", ev.Email)

		assert.Len(t, users.byID, 1)
		assert.Equal(t, pair.RefreshToken, refresh.tokens[user.ID.String()])
	})

	t.Run("never stores the plain password", func(t *testing.T) {
		svc, users, _, _ := newTestService(t)

		user, _, err := svc.Register(context.Background(), validInput())
		require.NoError(t, err)
		stored := users.byID[user.ID]
		assert.NotEqual(t, "correct-horse", stored.PasswordHash)
		assert.NotEmpty(t, stored.PasswordHash)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		_, _, err := svc.Register(context.Background(), validInput())
		require.NoError(t, err)

		_, _, err = svc.Register(context.Background(), validInput())
		assert.True(t, domain.IsDuplicate(err))
	})

	t.Run("broker outage does not fail the registration", func(t *testing.T) {
		svc, users, _, pub := newTestService(t)
		pub.err = errors.New("broker down")

		user, pair, err := svc.Register(context.Background(), validInput())
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.Len(t, users.byID, 1)
		_ = user
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc, users, _, _ := newTestService(t)
		in := validInput()
		in.Password = "short"

		_, _, err := svc.Register(context.Background(), in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Empty(t, users.byID)
	})
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	_, _, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		pair, err := svc.Login(context.Background(), "ada", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("wrong password and unknown user look alike", func(t *testing.T) {
		_, errWrong := svc.Login(context.Background(), "ada", "nope")
		_, errUnknown := svc.Login(context.Background(), "ghost", "nope")
		require.Error(t, errWrong)
		require.Error(t, errUnknown)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})
}

func TestRefresh(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	user, pair, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("valid token rotates the pair", func(t *testing.T) {
		next, err := svc.Refresh(context.Background(), user.ID, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

		// The old refresh token was overwritten and no longer verifies.
		_, err = svc.Refresh(context.Background(), user.ID, pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("rejects after logout", func(t *testing.T) {
		p, err := svc.Login(context.Background(), "ada", "correct-horse")
		require.NoError(t, err)
		require.NoError(t, svc.Logout(context.Background(), user.ID))

		_, err = svc.Refresh(context.Background(), user.ID, p.RefreshToken)
		assert.Error(t, err)
	})
}
