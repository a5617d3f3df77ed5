package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkvaulthq/linkvault/pkg/jwt"
)

func TestSessionManager(t *testing.T) {
	t.Parallel()

	t.Run("issue and verify", func(t *testing.T) {
		t.Parallel()

		m, err := NewSessionManager("secret-key", time.Hour)
		require.NoError(t, err)

		userID := uuid.New()
		token, err := m.Issue(userID)
		require.NoError(t, err)

		got, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("expired token is rejected without storage access", func(t *testing.T) {
		t.Parallel()

		m, err := NewSessionManager("secret-key", time.Hour)
		require.NoError(t, err)

		svc, err := jwt.NewFromString("secret-key")
		require.NoError(t, err)
		token, err := svc.Generate(jwt.StandardClaims{
			Subject:   uuid.New().String(),
			Issuer:    sessionIssuer,
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = m.Verify(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		t.Parallel()

		a, err := NewSessionManager("key-a", time.Hour)
		require.NoError(t, err)
		b, err := NewSessionManager("key-b", time.Hour)
		require.NoError(t, err)

		token, err := a.Issue(uuid.New())
		require.NoError(t, err)

		_, err = b.Verify(token)
		assert.Error(t, err)
	})

	t.Run("non uuid subject is rejected", func(t *testing.T) {
		t.Parallel()

		m, err := NewSessionManager("secret-key", time.Hour)
		require.NoError(t, err)

		svc, err := jwt.NewFromString("secret-key")
		require.NoError(t, err)
		token, err := svc.Generate(jwt.StandardClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing signing key", func(t *testing.T) {
		t.Parallel()

		_, err := NewSessionManager("", time.Hour)
		assert.Error(t, err)
	})
}
