package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/authv1"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/server"
)

type stubUserGetter struct {
	users map[uuid.UUID]*domain.User
}

func (s *stubUserGetter) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, &domain.NotFoundError{Entity: "user", ID: id.String()}
}

func startAuthServer(t *testing.T, users map[uuid.UUID]*domain.User) *grpc.ClientConn {
	t.Helper()
	log := logger.New("error", false)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	authv1.RegisterAuthServiceServer(srv, server.NewAuthService(&stubUserGetter{users: users}, log))
	go srv.Serve(lis) //nolint:errcheck
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestUserDirectoryLookup(t *testing.T) {
	log := logger.New("error", false)
	userID := uuid.New()
	conn := startAuthServer(t, map[uuid.UUID]*domain.User{
		userID: {ID: userID, FirstName: "Ada", LastName: "Lovelace"},
	})
	dir := NewUserDirectory(conn, time.Second, log)

	t.Run("known user", func(t *testing.T) {
		got, err := dir.Lookup(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "Ada", got.FirstName)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		_, err := dir.Lookup(context.Background(), uuid.New())
		assert.True(t, domain.IsNotFound(err))
		assert.False(t, domain.IsRemoteUnavailable(err))
	})
}

type stubCache struct {
	users map[string]*domain.UserSummary
	puts  int
}

func (c *stubCache) GetUser(_ context.Context, id string) (*domain.UserSummary, error) {
	return c.users[id], nil
}

func (c *stubCache) PutUser(_ context.Context, s *domain.UserSummary) error {
	c.users[s.UserID.String()] = s
	c.puts++
	return nil
}

func TestCachedUserDirectory(t *testing.T) {
	log := logger.New("error", false)
	userID := uuid.New()
	conn := startAuthServer(t, map[uuid.UUID]*domain.User{
		userID: {ID: userID, FirstName: "Ada"},
	})
	cache := &stubCache{users: make(map[string]*domain.UserSummary)}
	dir := NewCachedUserDirectory(NewUserDirectory(conn, time.Second, log), cache, log)

	first, err := dir.Lookup(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.puts)

	second, err := dir.Lookup(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// Second lookup was served from the cache.
	assert.Equal(t, 1, cache.puts)
}
