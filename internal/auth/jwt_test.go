package auth

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret")
	token, err := m.Issue(Identity{ID: 7, Email: "doc@example.com", UserType: UserTypeDoctor}, time.Hour)
	require.NoError(t, err)

	id, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.ID)
	assert.Equal(t, "doc@example.com", id.Email)
	assert.True(t, id.IsDoctor())
	assert.False(t, id.IsPatient())
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenManager("other").Issue(Identity{ID: 1, UserType: UserTypePatient}, time.Hour)
		require.NoError(t, err)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := m.Issue(Identity{ID: 1, UserType: UserTypePatient}, -time.Minute)
		require.NoError(t, err)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{ID: 1, UserType: "nurse"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("missing id", func(t *testing.T) {
		token, err := m.Issue(Identity{UserType: UserTypeAdmin}, time.Hour)
		require.NoError(t, err)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidClaims)
	})
}

func TestIdentityContext(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNoIdentity)

	ctx := WithIdentity(context.Background(), Identity{ID: 3, UserType: UserTypePatient})
	id, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id.ID)
}
