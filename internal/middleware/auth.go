package middleware

import (
	"net/http"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/domain/models"
	"blogapi/internal/httputil"
)

// Auth resolves the request identity from a bearer token and stores it in
// the request context. Requests without credentials proceed as anonymous:
// whether an action requires authentication is the permission evaluator's
// decision, not the middleware's. A presented-but-invalid token is
// rejected here with 401.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractBearer(r)
			if tokenString == "" {
				next.ServeHTTP(w, httputil.WithIdentity(r, models.Anonymous()))
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "token is invalid or expired")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, claims.Identity()))
		})
	}
}

// extractBearer returns the bearer token from the Authorization header,
// or an empty string if none is present.
func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
