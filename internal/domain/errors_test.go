package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		sentinel   error
		wantStatus int
	}{
		{"not found", &NotFoundError{Message: "gone"}, ErrNotFound, http.StatusNotFound},
		{"validation", &ValidationError{Message: "bad"}, ErrValidation, http.StatusBadRequest},
		{"unauthorized", &UnauthorizedError{Message: "who"}, ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", &ForbiddenError{Message: "no"}, ErrForbidden, http.StatusForbidden},
		{"conflict", &ConflictError{Message: "dup", Field: "username"}, ErrConflict, http.StatusConflict},
		{"field errors", &FieldErrors{Fields: map[string]string{"email": "taken"}}, ErrValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%T, sentinel) = false", tt.err)
			}
			httpErr, ok := tt.err.(HTTPError)
			if !ok {
				t.Fatalf("%T does not implement HTTPError", tt.err)
			}
			if httpErr.StatusCode() != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", httpErr.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("list articles: %w", &NotFoundError{Message: "article missing"})
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped NotFoundError no longer matches ErrNotFound")
	}
	if errors.Is(wrapped, ErrForbidden) {
		t.Error("wrapped NotFoundError matches the wrong sentinel")
	}
}

func TestFieldErrorsDeterministicOrder(t *testing.T) {
	err := &FieldErrors{Fields: map[string]string{
		"username": "taken",
		"email":    "malformed",
		"password": "too short",
	}}
	want := "email: malformed; password: too short; username: taken"
	for i := 0; i < 10; i++ {
		if got := err.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}
