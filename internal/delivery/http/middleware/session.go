package middleware

import (
	"net/http"
	"strings"

	"gotodo/internal/application/auth"
	"gotodo/internal/delivery/http/handler"
)

// Browser paths reachable without a session, matched exactly or as a
// path-segment prefix.
var publicRoutes = []string{"/", "/auth/login", "/auth/register"}

// API paths reachable without a session, matched as a prefix.
var publicAPIRoutes = []string{"/api/auth/login", "/api/auth/register", "/api/auth/logout"}

// TokenVerifier validates a session token and returns its claims.
// auth.Service satisfies it.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// Session is the request gate: it classifies each request as public or
// protected, verifies the session cookie on protected paths, and either
// rejects the request or forwards it with the identity attached to the
// context. It wraps the whole route table and runs once per request.
func Session(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Preflight requests carry no credentials; CORS answers them.
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			path := r.URL.Path

			if isPublicRoute(path) || isPublicAPIRoute(path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := handler.ReadAuthCookie(r)
			if !ok {
				reject(w, r, "Authentication required")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				reject(w, r, "Invalid authentication token")
				return
			}

			ctx := handler.WithIdentity(r.Context(), handler.Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// reject answers API requests with a structured 401 and sends browser
// navigation to the login page.
func reject(w http.ResponseWriter, r *http.Request, message string) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		handler.SendError(w, message, http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/auth/login", http.StatusFound)
}

func isPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if path == route || strings.HasPrefix(path, route+"/") {
			return true
		}
	}
	return false
}

func isPublicAPIRoute(path string) bool {
	for _, route := range publicAPIRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}
