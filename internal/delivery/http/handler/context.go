package handler

import "context"

// contextKey is the type for context keys
type contextKey string

// identityContextKey is the key used to store the authenticated identity
const identityContextKey contextKey = "identity"

// Identity is the authenticated caller, attached to the request context
// by the session middleware. Handlers trust it unconditionally; the
// middleware is the sole checkpoint.
type Identity struct {
	UserID string
	Email  string
}

// WithIdentity returns a context carrying the authenticated identity
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// GetIdentity retrieves the authenticated identity from the context
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
