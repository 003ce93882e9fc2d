package middleware

import (
	"errors"
	"strings"

	apperrors "github.com/axionlabs/axion-backend/errors"
	"github.com/axionlabs/axion-backend/logger"
	"github.com/gin-gonic/gin"
)

// extractBearerToken pulls the token out of the Authorization header.
// Returns "" when no Bearer credential is present.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests that do not carry a valid bearer token.
func RequireAuth(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		token := extractBearerToken(c)
		if token == "" {
			_ = c.Error(apperrors.AuthenticationFailed("Authentication credentials were not provided"))
			c.Abort()
			return
		}

		userID, err := validator.Validate(token)
		if err != nil {
			log.Warnw("Token validation failed",
				"error", err,
				"path", c.Request.URL.Path)
			if errors.Is(err, ErrTokenExpired) {
				_ = c.Error(apperrors.AuthenticationFailed("Your session has expired"))
			} else {
				_ = c.Error(apperrors.AuthenticationFailed("Invalid authentication credentials"))
			}
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Set(string(AuthenticatedKey), true)
		c.Next()
	}
}

// OptionalAuth validates a bearer token when one is present but never rejects
// the request. Handlers read the authenticated flag to pick the response shape.
func OptionalAuth(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Set(string(AuthenticatedKey), false)
			c.Next()
			return
		}

		userID, err := validator.Validate(token)
		if err != nil {
			logger.GetLogger().Debugw("Ignoring invalid token on public route",
				"error", err,
				"path", c.Request.URL.Path)
			c.Set(string(AuthenticatedKey), false)
			c.Next()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Set(string(AuthenticatedKey), true)
		c.Next()
	}
}

// IsAuthenticated reports whether the current request carried a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(string(AuthenticatedKey))
}
