package models

import "github.com/golang-jwt/jwt/v5"

// Token type claim values. Refresh tokens are only accepted by the
// refresh endpoint, never by the auth middleware.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair is the login response payload.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenClaims is the JWT claims structure for locally issued tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Username  string `json:"username,omitempty"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *TokenClaims) GetUserID() string {
	return c.Subject
}

// Identity converts verified claims into the request identity context.
func (c *TokenClaims) Identity() Identity {
	return Identity{
		IsAuthenticated: true,
		UserID:          c.Subject,
		Username:        c.Username,
		IsStaff:         c.IsStaff,
	}
}
