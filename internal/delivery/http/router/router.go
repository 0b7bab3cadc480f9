package router

import (
	"log/slog"
	"net/http"

	"gotodo/internal/delivery/http/handler"
	"gotodo/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Auth *handler.AuthHandler
	Todo *handler.TodoHandler
}

// Setup configures all routes for the application. The session gate
// wraps the whole table so it runs before any handler; request logging
// wraps the gate.
func Setup(handlers Handlers, verifier middleware.TokenVerifier, limiter middleware.Limiter, allowedOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	cors := middleware.CORS(allowedOrigins)
	limited := middleware.RateLimit(limiter)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	// Auth routes (public, rate limited where credentials are handled)
	mux.HandleFunc("/api/auth/register", chain(handlers.Auth.Register, cors, limited))
	mux.HandleFunc("/api/auth/login", chain(handlers.Auth.Login, cors, limited))
	mux.HandleFunc("/api/auth/logout", cors(handlers.Auth.Logout))
	mux.HandleFunc("/api/auth/me", cors(handlers.Auth.Me))

	// Todo routes (protected by the session gate)
	mux.HandleFunc("/api/todos", cors(handlers.Todo.Collection))
	mux.HandleFunc("/api/todos/stats", cors(handlers.Todo.Stats))
	mux.HandleFunc("/api/todos/", cors(handlers.Todo.ByID))

	var root http.Handler = mux
	root = middleware.Session(verifier)(root)
	root = middleware.Logging(logger)(root)
	return root
}
