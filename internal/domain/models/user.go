package models

import "time"

// User is an account on the platform. Username is immutable after
// registration; the staff flag is only ever changed by administrative
// seeding, never through the profile-edit path.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsStaff      bool      `json:"is_staff" db:"is_staff"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
