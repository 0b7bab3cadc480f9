package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gotodo/internal/application/auth"
	"gotodo/internal/delivery/http/handler"
)

func newGatedHandler(t *testing.T, tokens *auth.TokenService) (http.Handler, *handler.Identity) {
	t.Helper()

	var seen handler.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := handler.GetIdentity(r.Context()); ok {
			seen = id
		}
		w.WriteHeader(http.StatusOK)
	})

	return Session(verifierFunc(tokens.Verify))(next), &seen
}

// verifierFunc adapts TokenService.Verify to the TokenVerifier interface.
type verifierFunc func(token string) (*auth.Claims, error)

func (f verifierFunc) VerifyToken(token string) (*auth.Claims, error) { return f(token) }

func TestSession_PublicPathsPassThrough(t *testing.T) {
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	gate, _ := newGatedHandler(t, tokens)

	for _, path := range []string{"/", "/auth/login", "/auth/register", "/auth/login/reset", "/api/auth/login", "/api/auth/register", "/api/auth/logout"} {
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("path %s: got status %d, want 200", path, rec.Code)
		}
	}
}

func TestSession_PreflightPassesThrough(t *testing.T) {
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	gate, _ := newGatedHandler(t, tokens)

	// Preflight requests never carry the session cookie; the gate must
	// let them reach the CORS layer instead of answering 401.
	req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}

func TestSession_MissingToken_API(t *testing.T) {
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	gate, _ := newGatedHandler(t, tokens)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}

	var resp handler.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Success {
		t.Fatal("expected success=false")
	}
	if resp.Error != "Authentication required" {
		t.Fatalf("got error %q, want %q", resp.Error, "Authentication required")
	}
}

func TestSession_MissingToken_Browser(t *testing.T) {
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	gate, _ := newGatedHandler(t, tokens)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/auth/login" {
		t.Fatalf("got Location %q, want /auth/login", loc)
	}
}

func TestSession_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	gate, _ := newGatedHandler(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: handler.AuthCookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}

	var resp handler.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error != "Invalid authentication token" {
		t.Fatalf("got error %q, want %q", resp.Error, "Invalid authentication token")
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenService([]byte("k"), -time.Minute)
	tok, err := expired.Issue("u1", "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gate, _ := newGatedHandler(t, auth.NewTokenService([]byte("k"), time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: handler.AuthCookieName, Value: tok})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
}

func TestSession_ValidToken_AttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	gate, seen := newGatedHandler(t, tokens)

	tok, err := tokens.Issue("u1", "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: handler.AuthCookieName, Value: tok})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if seen.UserID != "u1" || seen.Email != "a@x.com" {
		t.Fatalf("identity not attached: %+v", seen)
	}
}
