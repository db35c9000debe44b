package middleware

import (
	"strings"

	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// TokenValidator resolves a session token to a user ID.
// Implemented by the users service; injected here to avoid a
// middleware -> services import cycle.
type TokenValidator func(token string) (uint, error)

// AuthRequired checks for a valid session token in the cookie or the
// Authorization header and stores the resolved user ID in the context.
func AuthRequired(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			appErr := errors.Unauthorized("missing or invalid authentication")
			c.JSON(appErr.Status, appErr)
			c.Abort()
			return
		}

		userID, err := validate(token)
		if err != nil {
			appErr := errors.Unauthorized("session expired or invalid")
			c.JSON(appErr.Status, appErr)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID from the context.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func extractToken(c *gin.Context) string {
	if session, err := c.Cookie("session_id"); err == nil && session != "" {
		return session
	}
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	return token
}
