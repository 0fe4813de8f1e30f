package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/auth"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestRequireAdmin(t *testing.T) {
	const secret = "s3cret"
	router := newTestEngine()
	router.POST("/guarded", RequireAdmin(secret), okHandler)

	// No cookie.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: got %d, want 401", w.Code)
	}

	// Wrong token.
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: auth.SessionToken("other")})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: got %d, want 401", w.Code)
	}

	// Valid token.
	req = httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: auth.SessionToken(secret)})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200", w.Code)
	}
}

func TestRequireAdminNoSecret(t *testing.T) {
	router := newTestEngine()
	router.POST("/guarded", RequireAdmin(""), okHandler)

	// With no secret configured every token fails, including the empty
	// one.
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: ""})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestAdminPageGatePaths(t *testing.T) {
	const secret = "s3cret"
	router := newTestEngine()
	router.Use(AdminPageGate(secret))
	for _, path := range []string{"/admin/login", "/admin", "/admin/blog", "/api/blog/posts", "/public"} {
		router.GET(path, okHandler)
	}

	cases := []struct {
		path string
		want int
	}{
		{"/public", http.StatusOK},
		{"/api/blog/posts", http.StatusOK},
		{"/admin/login", http.StatusOK},
		{"/admin", http.StatusFound},
		{"/admin/blog", http.StatusFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("GET %s without session: got %d, want %d", tc.path, w.Code, tc.want)
		}
	}

	// With the session cookie, admin pages pass.
	req := httptest.NewRequest(http.MethodGet, "/admin/blog", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: auth.SessionToken(secret)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("with session: got %d, want 200", w.Code)
	}
}
