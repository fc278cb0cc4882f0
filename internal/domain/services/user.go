package services

import (
	"context"

	"blogapi/internal/domain/models"
)

// RegisterRequest is the self-service registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the token-obtain payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the self profile-edit payload. Nil fields are
// left unchanged. Username and the staff flag are not editable through
// this path.
type UpdateProfileRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserService defines account operations.
type UserService interface {
	// Register creates a new non-staff account. Open to anonymous callers.
	Register(ctx context.Context, identity models.Identity, req *RegisterRequest) (*models.User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req *LoginRequest) (*models.TokenPair, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// GetProfile returns the caller's own record.
	GetProfile(ctx context.Context, identity models.Identity) (*models.User, error)

	// UpdateProfile edits the caller's own record.
	UpdateProfile(ctx context.Context, identity models.Identity, req *UpdateProfileRequest) (*models.User, error)
}
