package service

import (
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/util"
)

// TokenService issues and validates stateless bearer tokens. There is no
// revocation list; a token stays valid until its expiry.
type TokenService struct {
	secret string
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret: cfg.Secret,
		ttl:    cfg.TokenTTL(),
		leeway: time.Duration(cfg.LeewaySeconds) * time.Second,
		now:    time.Now,
	}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(userID string) (string, error) {
	return util.GenerateJWT(userID, s.secret, s.ttl, s.now())
}

// Validate returns the user id carried by token, or util.ErrTokenExpired /
// util.ErrTokenInvalid.
func (s *TokenService) Validate(token string) (string, error) {
	claims, err := util.ParseJWT(token, s.secret, s.now(), s.leeway)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
