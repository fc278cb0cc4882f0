package httputil

import (
	"context"
	"net/http"

	"blogapi/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// WithIdentity attaches the request identity to the request context
func WithIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the identity from the request context.
// Returns the anonymous identity if the middleware never ran.
func GetIdentity(r *http.Request) models.Identity {
	identity, ok := r.Context().Value(identityKey).(models.Identity)
	if !ok {
		return models.Anonymous()
	}
	return identity
}
