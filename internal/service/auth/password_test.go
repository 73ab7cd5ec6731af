package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		hashed, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", hashed)

		assert.NoError(t, hasher.Compare(hashed, "password123"))
		assert.Error(t, hasher.Compare(hashed, "wrong-password"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("password123")
		require.NoError(t, err)
		second, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("zero cost selects the default", func(t *testing.T) {
		hashed, err := NewBcryptHasher(0).Hash("password123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hashed))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
