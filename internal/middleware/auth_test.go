package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/internal/auth"
	"blogapi/internal/domain/models"
	"blogapi/internal/httputil"
)

func newAuthFixture(t *testing.T) (*auth.TokenManager, func(http.Handler) http.Handler) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewTokenManager("test-secret", "blogapi-test", 5*time.Minute, 24*time.Hour, logger)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return tokens, Auth(tokens)
}

func identityProbe(captured *models.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = httputil.GetIdentity(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeaderIsAnonymous(t *testing.T) {
	_, authMw := newAuthFixture(t)
	var identity models.Identity
	handler := authMw(identityProbe(&identity))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/articles", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if identity.IsAuthenticated {
		t.Error("identity authenticated without credentials")
	}
}

func TestAuthValidTokenResolvesIdentity(t *testing.T) {
	tokens, authMw := newAuthFixture(t)
	var identity models.Identity
	handler := authMw(identityProbe(&identity))

	access, err := tokens.IssueAccess(&models.User{ID: "u1", Username: "alice", IsStaff: true})
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !identity.IsAuthenticated || identity.UserID != "u1" || identity.Username != "alice" || !identity.IsStaff {
		t.Errorf("identity = %+v, want authenticated staff u1/alice", identity)
	}
}

func TestAuthRejectsPresentedInvalidToken(t *testing.T) {
	tokens, authMw := newAuthFixture(t)

	refresh, err := tokens.IssuePair(&models.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not-a-token"},
		{"refresh token on the request path", refresh.Refresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := authMw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest("GET", "/api/articles", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if called {
				t.Error("downstream handler reached with invalid token")
			}
		})
	}
}

func TestAuthIgnoresNonBearerSchemes(t *testing.T) {
	_, authMw := newAuthFixture(t)
	var identity models.Identity
	handler := authMw(identityProbe(&identity))

	req := httptest.NewRequest("GET", "/api/articles", nil)
	req.Header.Set("Authorization", "Basic YWxpY2U6cGFzcw==")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if identity.IsAuthenticated {
		t.Error("non-bearer scheme treated as credentials")
	}
}
