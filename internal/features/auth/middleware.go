package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/huddleapp/huddle/internal/pkg/jwt"
	"github.com/huddleapp/huddle/internal/pkg/response"
)

// Context keys set by Middleware.
const (
	ContextSubject = "subject"
	ContextEmail   = "email"
)

// Middleware authenticates the session token and attaches the caller's
// identity-provider subject to the request. It deliberately does NOT resolve
// the internal user record; every operation performs that directory lookup
// itself and fails closed when it misses.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization format")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(parts[1], secret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
