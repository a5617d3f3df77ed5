package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := hashPassword("pw123456", bcrypt.MinCost)
		require.NoError(t, err)
		assert.NotEqual(t, "pw123456", hash)
		assert.True(t, verifyPassword(hash, "pw123456"))
		assert.False(t, verifyPassword(hash, "pw1234567"))
	})

	t.Run("same input yields distinct digests", func(t *testing.T) {
		t.Parallel()

		a, err := hashPassword("pw123456", bcrypt.MinCost)
		require.NoError(t, err)
		b, err := hashPassword("pw123456", bcrypt.MinCost)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		t.Parallel()

		hash, err := hashPassword("pw123456", 99)
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestPlaceholderPassword(t *testing.T) {
	t.Parallel()

	a, err := placeholderPassword()
	require.NoError(t, err)
	b, err := placeholderPassword()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 40)
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, verifyPassword("not-a-bcrypt-digest", "pw123456"))
	assert.False(t, verifyPassword("", "pw123456"))
}
