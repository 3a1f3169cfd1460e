package util

import "errors"

// 认证相关
var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// 业务相关
var (
	ErrPlantNotFound       = errors.New("plant not found")
	ErrInvalidImage        = errors.New("image_base64 is not valid base64 data")
	ErrNoActiveQuiz        = errors.New("no active quiz session found")
	ErrQuizSessionMissing  = errors.New("quiz session not found")
	ErrAIGateway           = errors.New("ai gateway request failed")
	ErrMalformedAIResponse = errors.New("ai response could not be parsed")
)
