package repositories

import (
	"context"

	"blogapi/internal/domain/models"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create inserts a new user and fills in its generated ID and timestamp.
	// Returns a conflict error if the username or email is already taken
	// (the unique constraints are the authoritative backstop for the
	// service-level uniqueness checks).
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by username (used by login)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Update persists email and name changes. Username, password hash and
	// staff flag are not touched by this path.
	Update(ctx context.Context, user *models.User) error

	// UsernameExists reports whether any user has the given username
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether a user other than excludeUserID has the
	// given email. Pass an empty excludeUserID to check all users.
	EmailExists(ctx context.Context, email, excludeUserID string) (bool, error)
}
