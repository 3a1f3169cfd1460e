package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateJWT("user-1", "secret", time.Hour, now)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret", now.Add(time.Minute), 0)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(time.Hour)))
	assert.True(t, claims.IssuedAt.Time.Equal(now))
}

func TestParseJWTErrors(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token, err := GenerateJWT("user-1", "secret", time.Hour, now)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret", now.Add(time.Hour), 0)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = ParseJWT(token, "other", now, 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseJWT("garbage", "secret", now, 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseJWTRejectsOtherAlgorithms(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret", now, 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseJWTRequiresExpiry(t *testing.T) {
	claims := &Claims{UserID: "user-1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret", time.Now(), 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
