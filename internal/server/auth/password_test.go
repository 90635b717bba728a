package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_AndCompare(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", h)

	require.NoError(t, ComparePasswordAndHash("secret", h))
	assert.ErrorIs(t, ComparePasswordAndHash("wrong", h), ErrMismatchedHashAndPassword)
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHashPassword_DefaultCost(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret", 0)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestComparePasswordAndHash_MalformedHash(t *testing.T) {
	t.Parallel()

	err := ComparePasswordAndHash("secret", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatchedHashAndPassword)
}
