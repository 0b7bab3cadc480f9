package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gotodo/internal/delivery/http/handler"
)

// Limiter decides whether a request from the given client identifier may
// proceed. Implementations own their counting state; the in-memory one
// lives in internal/infrastructure/ratelimit and can be swapped for a
// shared store in multi-process deployments.
type Limiter interface {
	Allow(identifier string) (bool, time.Duration)
}

// RateLimit rejects requests once the caller exhausts the limiter's
// window. Applied to the login and register routes.
func RateLimit(limiter Limiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter := limiter.Allow(clientIP(r))
			if !allowed {
				seconds := int((retryAfter + time.Second - 1) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				handler.SendError(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next(w, r)
		}
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
