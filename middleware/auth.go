package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/auth"
)

// RequireAdmin guards a mutating API route: the admin_session cookie
// must verify against the token derived from the current secret. This
// check is independent of the page gate; API routes are reachable
// directly and never trust it.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip for OPTIONS requests (CORS preflight)
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, err := c.Cookie(auth.CookieName)
		if err != nil || !auth.VerifyToken(token, auth.SessionToken(secret)) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
