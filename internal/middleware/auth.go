package middleware

import (
	"net/http"
	"strings"

	"github.com/mosg85/Angeln-Eventplaner/internal/auth"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

// Auth verifies the bearer token and tags the request with the caller's user
// id and role.
func Auth(secret []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "not logged in"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// It must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString("role") != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
