package service

import (
	"context"
	"testing"

	"verdant_backend/internal/config"
	"verdant_backend/internal/repository"
	"verdant_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-123456"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	tokens := NewTokenService(config.JWTConfig{Secret: testSecret, ExpireHours: 7 * 24})
	return NewAuthService(repository.NewUserRepository(db), tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret1", user.Password)

	userID, err := svc.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	loggedIn, loginToken, err := svc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	me, err := svc.Authenticate(ctx, loginToken)
	require.NoError(t, err)
	assert.Equal(t, "Ada", me.Name)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other", "ada@example.com", "another")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	// 邮箱不区分大小写
	_, _, err = svc.Register(ctx, "Shouty", "  ADA@Example.com ", "another")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ADA@example.com", "secret1")
	assert.NoError(t, err)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Tokens.Issue("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, util.ErrTokenInvalid)
}
