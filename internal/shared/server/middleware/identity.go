package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/auth"
)

const userIDKey = "userId"

// Identity parses an optional bearer token into request context. No route
// requires it: owner identifiers remain caller-supplied and unverified, so a
// bad or absent token never rejects the request.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if claims, err := auth.VerifyToken(token); err == nil {
				c.Set(userIDKey, claims.Subject)
			}
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the Identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
