package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost factor 12 for a good security/performance balance
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PasswordPolicy validates candidate passwords. The user service enforces
// the minimum length floor itself and then delegates everything else here,
// so deployments can swap in stricter policies.
type PasswordPolicy interface {
	Validate(password string) error
}

// DefaultPasswordPolicy rejects entirely numeric passwords.
type DefaultPasswordPolicy struct{}

// Validate implements PasswordPolicy.
func (DefaultPasswordPolicy) Validate(password string) error {
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return errors.New("password cannot be entirely numeric")
	}
	return nil
}
