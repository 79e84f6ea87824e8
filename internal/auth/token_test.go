package auth_test

import (
	"testing"
	"time"

	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer(t *testing.T) {
	issuer := auth.NewJWTIssuer("test-secret", time.Hour)
	user := &model.User{ID: 42, Email: "root@site.com", IsStaff: true, IsSuperuser: true}

	raw, exp, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, "root@site.com", claims.Email)
	assert.True(t, claims.IsStaff)
	assert.True(t, claims.IsSuperuser)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTIssuer_Rejects(t *testing.T) {
	user := &model.User{ID: 1, Email: "a@b.com", IsStaff: true}

	t.Run("Wrong secret", func(t *testing.T) {
		raw, _, err := auth.NewJWTIssuer("secret-a", time.Hour).Issue(user)
		require.NoError(t, err)

		_, err = auth.NewJWTIssuer("secret-b", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		raw, _, err := auth.NewJWTIssuer("secret", -time.Minute).Issue(user)
		require.NoError(t, err)

		_, err = auth.NewJWTIssuer("secret", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.NewJWTIssuer("secret", time.Hour).Parse("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
