package middleware

import (
	"errors"
	"strings"

	"verdant_backend/internal/service"
	"verdant_backend/internal/util"
	"verdant_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token to a user and stores it under
// util.ContextUserKey.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			tokenString = strings.TrimSpace(authHeader[7:])
		}

		if tokenString == "" {
			util.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, util.ErrTokenExpired):
				util.Unauthorized(c, "Token has expired")
			case errors.Is(err, util.ErrTokenInvalid):
				util.Unauthorized(c, "Invalid token")
			case errors.Is(err, util.ErrUserNotFound):
				util.Unauthorized(c, "User not found")
			default:
				logger.Log.Error("Failed to authenticate request", zap.Error(err))
				util.InternalServerError(c, "Failed to authenticate request")
			}
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, user)
		c.Next()
	}
}
