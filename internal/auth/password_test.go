package auth_test

import (
	"strings"
	"testing"

	"go-gin-seat-booking/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)

	hashed, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hashed)
	assert.True(t, hasher.Verify(hashed, "pw1"))
	assert.False(t, hasher.Verify(hashed, "pw2"))

	again, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "each hash uses a fresh salt")
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)

	hashed, err := hasher.Hash("")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "!"))
	assert.False(t, hasher.Verify(hashed, ""))
	assert.False(t, hasher.Verify("", ""))
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher := auth.NewBcryptHasher(1)

	hashed, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hashed, "pw1"))
}

func TestUnusablePassword(t *testing.T) {
	a, b := auth.UnusablePassword(), auth.UnusablePassword()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 33)
	assert.NotContains(t, a, "-")
}
