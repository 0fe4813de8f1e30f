package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/auth"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the submitted password against the admin secret and, on
// success, sets the session cookie to the derived token. The token is
// re-derived per request; nothing is cached process-wide.
func (h *Handler) Login(c *gin.Context) {
	if h.Cfg.AdminSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server not configured"})
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Cfg.AdminSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token := auth.SessionToken(h.Cfg.AdminSecret)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, auth.CookieMaxAge, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout clears the session cookie and sends the browser back to the
// login page.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Me reports whether the caller holds a valid admin session.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": h.isAdmin(c)})
}
