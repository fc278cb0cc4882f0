package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// JWKSVerifier implements TokenVerifier against a remote JWKS endpoint,
// for deployments that delegate token issuance to an external identity
// provider instead of the built-in token manager. The staff flag is read
// from the provider's is_staff claim.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewJWKSVerifier creates a verifier that fetches public keys from the given
// JWKS endpoint. Keys are cached and refreshed based on HTTP cache headers.
func NewJWKSVerifier(jwksURL string, logger *slog.Logger) (TokenVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx := context.Background()
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWKS verifier initialized", "jwks_url", jwksURL)

	return &JWKSVerifier{jwks: jwks, logger: logger}, nil
}

// VerifyToken validates an externally issued token and extracts claims.
func (v *JWKSVerifier) VerifyToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, v.jwks.Keyfunc)
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Prevent algorithm confusion attacks - allow only RS256 or ES256
	switch token.Method.Alg() {
	case "RS256", "ES256":
		// allowed
	default:
		v.logger.Warn("token uses unexpected algorithm", "algorithm", token.Method.Alg())
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	// External providers don't stamp our token_type claim; reject only an
	// explicit refresh token.
	if claims.TokenType != "" && claims.TokenType != models.TokenTypeAccess {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close releases resources held by the verifier. keyfunc v3 manages its
// own refresh lifecycle, so this is a no-op kept for interface symmetry.
func (v *JWKSVerifier) Close() error {
	v.logger.Info("JWKS verifier closed")
	return nil
}
