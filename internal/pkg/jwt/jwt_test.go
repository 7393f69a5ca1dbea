package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour, 24*time.Hour)

	tokenStr, err := svc.GenerateAccessToken(Identity{UserID: 42, Email: "a@example.com", IsAdmin: true})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Empty(t, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour, 24*time.Hour)

	tokenStr, err := svc.GenerateRefreshToken(Identity{UserID: 7, Email: "b@example.com"})
	require.NoError(t, err)

	claims, err := svc.ParseRefreshToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	svc := New("test-secret", time.Hour, 24*time.Hour)

	tokenStr, err := svc.GenerateRefreshToken(Identity{UserID: 7})
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(tokenStr)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := New("test-secret", time.Hour, 24*time.Hour)

	tokenStr, err := svc.GenerateAccessToken(Identity{UserID: 7})
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(tokenStr)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredToken(t *testing.T) {
	svc := New("test-secret", -time.Minute, 24*time.Hour)

	tokenStr, err := svc.GenerateAccessToken(Identity{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(tokenStr)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestWrongSecret(t *testing.T) {
	issuer := New("secret-one", time.Hour, 24*time.Hour)
	verifier := New("secret-two", time.Hour, 24*time.Hour)

	tokenStr, err := issuer.GenerateAccessToken(Identity{UserID: 1})
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageToken(t *testing.T) {
	svc := New("test-secret", time.Hour, 24*time.Hour)

	_, err := svc.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
