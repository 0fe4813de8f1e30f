package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPRateLimiter(t *testing.T) {
	rl := newIPRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("request over the limit should be denied")
	}
	// Other IPs have their own budget.
	if !rl.allow("10.0.0.2") {
		t.Fatal("different IP should be allowed")
	}
}

func TestIPRateLimiterWindowExpiry(t *testing.T) {
	rl := newIPRateLimiter(1, 10*time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("second request inside the window should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Fatal("request after the window should be allowed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestEngine()
	router.POST("/login", RateLimit(2, time.Minute), okHandler)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i+1, w.Code)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got %d, want 429", w.Code)
	}
}
