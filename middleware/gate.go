package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/auth"
)

const loginPath = "/admin/login"

// AdminPageGate redirects browser navigations to /admin pages to the
// login page when the session cookie does not verify. The login page
// itself and all /api routes pass through; API routes enforce their
// own check with RequireAdmin.
func AdminPageGate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == loginPath || strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}
		if path != "/admin" && !strings.HasPrefix(path, "/admin/") {
			c.Next()
			return
		}

		token, err := c.Cookie(auth.CookieName)
		if err != nil || !auth.VerifyToken(token, auth.SessionToken(secret)) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
