package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	userID := uuid.New()

	raw, err := m.Issue(userID, "ada")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, claims, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, "ada", claims.Username)
}

func TestVerifyRejects(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := m.Issue(userID, "ada")
		require.NoError(t, err)

		other := NewManager("other-secret", time.Minute)
		_, _, err = other.Verify(raw)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewManager("test-secret", -time.Minute)
		raw, err := short.Issue(userID, "ada")
		require.NoError(t, err)

		_, _, err = short.Verify(raw)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, _, err := m.Verify("not.a.token")
		assert.Error(t, err)
	})
}
