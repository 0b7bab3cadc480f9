package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func findAuthCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == AuthCookieName {
			return cookie
		}
	}
	t.Fatal("auth cookie not set")
	return nil
}

func TestSetAuthCookie_Attributes(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookie(rec, "token-value", false)

	cookie := findAuthCookie(t, rec)
	if cookie.Value != "token-value" {
		t.Fatalf("got value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("got SameSite %v, want strict", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Fatalf("got path %q, want /", cookie.Path)
	}
	if want := int(7 * 24 * time.Hour / time.Second); cookie.MaxAge != want {
		t.Fatalf("got MaxAge %d, want %d", cookie.MaxAge, want)
	}
	if cookie.Secure {
		t.Fatal("secure flag should follow the config, off here")
	}
}

func TestSetAuthCookie_Secure(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookie(rec, "token-value", true)

	if !findAuthCookie(t, rec).Secure {
		t.Fatal("secure flag not set")
	}
}

func TestClearAuthCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearAuthCookie(rec, false)

	cookie := findAuthCookie(t, rec)
	if cookie.Value != "" {
		t.Fatalf("got value %q, want empty", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("got MaxAge %d, want negative", cookie.MaxAge)
	}
}

func TestReadAuthCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ReadAuthCookie(req); ok {
		t.Fatal("expected no cookie")
	}

	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: " tok "})
	value, ok := ReadAuthCookie(req)
	if !ok || value != "tok" {
		t.Fatalf("got %q, %v", value, ok)
	}
}
