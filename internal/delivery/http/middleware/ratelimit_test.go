package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
	lastID     string
}

func (s *stubLimiter) Allow(identifier string) (bool, time.Duration) {
	s.lastID = identifier
	return s.allowed, s.retryAfter
}

func TestRateLimit_Allows(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	called := false

	h := RateLimit(limiter)(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:4321"
	h(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("handler not called")
	}
	if limiter.lastID != "10.0.0.1" {
		t.Fatalf("got identifier %q, want 10.0.0.1", limiter.lastID)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	limiter := &stubLimiter{allowed: false, retryAfter: 90 * time.Second}

	h := RateLimit(limiter)(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	h(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "90" {
		t.Fatalf("got Retry-After %q, want 90", got)
	}
}

func TestRateLimit_RetryAfterRoundsUp(t *testing.T) {
	limiter := &stubLimiter{allowed: false, retryAfter: 500 * time.Millisecond}

	h := RateLimit(limiter)(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

	// A sub-second window remainder must not advertise an immediate retry.
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("got Retry-After %q, want 1", got)
	}
}

func TestRateLimit_ForwardedFor(t *testing.T) {
	limiter := &stubLimiter{allowed: true}

	h := RateLimit(limiter)(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	h(httptest.NewRecorder(), req)

	if limiter.lastID != "203.0.113.9" {
		t.Fatalf("got identifier %q, want first forwarded address", limiter.lastID)
	}
}
