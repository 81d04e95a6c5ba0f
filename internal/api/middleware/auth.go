package middleware

import (
	"net/http"
	"strings"

	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key the authenticated admin email is stored
// under.
const ActorKey = "actor"

// RequireAdmin rejects requests without a valid admin bearer token.
func RequireAdmin(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		email, err := auth.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ActorKey, email)
		c.Next()
	}
}

// Actor returns the authenticated admin email, or "system" outside the
// admin group.
func Actor(c *gin.Context) string {
	if actor, ok := c.Get(ActorKey); ok {
		if email, ok := actor.(string); ok {
			return email
		}
	}
	return "system"
}
