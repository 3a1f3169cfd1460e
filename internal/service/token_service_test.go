package service

import (
	"testing"
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLifetime(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService(config.JWTConfig{Secret: testSecret})
	assert.Equal(t, 7*24*time.Hour, svc.TTL())

	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("user-1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "one second later", at: issuedAt.Add(time.Second)},
		{name: "just before expiry", at: issuedAt.Add(7*24*time.Hour - time.Second)},
		{name: "exactly at expiry", at: issuedAt.Add(7 * 24 * time.Hour), wantErr: util.ErrTokenExpired},
		{name: "one second after expiry", at: issuedAt.Add(7*24*time.Hour + time.Second), wantErr: util.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.at }
			userID, err := svc.Validate(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", userID)
		})
	}
}

func TestTokenRejectsOtherSecret(t *testing.T) {
	issuer := NewTokenService(config.JWTConfig{Secret: "first-secret"})
	verifier := NewTokenService(config.JWTConfig{Secret: "second-secret"})

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, util.ErrTokenInvalid)
}

func TestTokenLeeway(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService(config.JWTConfig{Secret: testSecret, ExpireHours: 1, LeewaySeconds: 30})
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("user-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour + 10*time.Second) }
	_, err = svc.Validate(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Minute) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, util.ErrTokenExpired)
}
