package auth

import (
	"strings"
	"testing"

	"advisor/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("StrongPass123!", "not-a-hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	for _, cfg := range []*config.Config{nil, {}, {Auth: &config.AuthConfig{BcryptCost: 99}}} {
		h, ok := NewBcryptHasher(cfg).(*bcryptHasher)
		require.True(t, ok)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
