package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(t *testing.T, accessTTL, refreshTTL time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret", "blogapi-test", accessTTL, refreshTTL, testLogger())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return m
}

var tokenUser = &models.User{ID: "u1", Username: "alice", IsStaff: true}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", "blogapi-test", time.Minute, time.Hour, testLogger()); err == nil {
		t.Fatal("NewTokenManager(empty secret) = nil error, want error")
	}
}

func TestIssueAndVerifyPair(t *testing.T) {
	m := newTestManager(t, 5*time.Minute, 24*time.Hour)

	pair, err := m.IssuePair(tokenUser)
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	claims, err := m.VerifyToken(pair.Access)
	if err != nil {
		t.Fatalf("VerifyToken(access) error = %v", err)
	}
	if claims.GetUserID() != "u1" {
		t.Errorf("user ID = %q, want %q", claims.GetUserID(), "u1")
	}
	if claims.Username != "alice" || !claims.IsStaff {
		t.Errorf("claims = (%q, staff=%v), want alice/staff", claims.Username, claims.IsStaff)
	}

	identity := claims.Identity()
	if !identity.IsAuthenticated || identity.UserID != "u1" || !identity.IsStaff {
		t.Errorf("identity = %+v, want authenticated staff u1", identity)
	}

	if _, err := m.VerifyRefresh(pair.Refresh); err != nil {
		t.Errorf("VerifyRefresh(refresh) error = %v", err)
	}
}

func TestTokenTypeSegregation(t *testing.T) {
	m := newTestManager(t, 5*time.Minute, 24*time.Hour)
	pair, err := m.IssuePair(tokenUser)
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	if _, err := m.VerifyToken(pair.Refresh); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("VerifyToken(refresh) error = %v, want unauthorized", err)
	}
	if _, err := m.VerifyRefresh(pair.Access); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("VerifyRefresh(access) error = %v, want unauthorized", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := newTestManager(t, -time.Minute, -time.Minute)
	pair, err := m.IssuePair(tokenUser)
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	if _, err := m.VerifyToken(pair.Access); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("VerifyToken(expired) error = %v, want unauthorized", err)
	}
}

func TestForeignSignatureRejected(t *testing.T) {
	m := newTestManager(t, 5*time.Minute, 24*time.Hour)
	other, err := NewTokenManager("other-secret", "blogapi-test", 5*time.Minute, 24*time.Hour, testLogger())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := other.IssueAccess(tokenUser)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}
	if _, err := m.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("VerifyToken(foreign signature) error = %v, want unauthorized", err)
	}

	if _, err := m.VerifyToken("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("VerifyToken(garbage) error = %v, want unauthorized", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("sturdy-passphrase")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "sturdy-passphrase" {
		t.Fatal("hash equals the plaintext")
	}
	if !CheckPassword(hash, "sturdy-passphrase") {
		t.Error("CheckPassword(correct) = false")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword(wrong) = true")
	}
}

func TestDefaultPasswordPolicy(t *testing.T) {
	policy := DefaultPasswordPolicy{}

	if err := policy.Validate("12345678"); err == nil {
		t.Error("Validate(all digits) = nil, want error")
	}
	if err := policy.Validate("pass1234"); err != nil {
		t.Errorf("Validate(mixed) = %v, want nil", err)
	}
}
