package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, h.Verify("s3cret!", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
}

func TestBcryptPasswordHasher_MalformedHashLooksLikeMismatch(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	assert.ErrorIs(t, h.Verify("s3cret!", "not-a-bcrypt-hash"), ErrPasswordMismatch)
}

func TestNewBcryptPasswordHasher_ClampsBadCost(t *testing.T) {
	h := NewBcryptPasswordHasher(99)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
