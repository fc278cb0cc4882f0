package auth

import (
	"errors"
	"log/slog"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies locally signed HS256 tokens. Access
// tokens carry the subject plus username and staff flag; refresh tokens
// carry the subject only and are rejected everywhere except the refresh
// endpoint.
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *slog.Logger
}

// NewTokenManager creates a token manager signing with the given secret.
func NewTokenManager(secret, issuer string, accessTTL, refreshTTL time.Duration, logger *slog.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}, nil
}

// IssuePair issues an access/refresh token pair for a user.
func (m *TokenManager) IssuePair(user *models.User) (*models.TokenPair, error) {
	access, err := m.issue(user, models.TokenTypeAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.issue(user, models.TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess issues a fresh access token for a user.
func (m *TokenManager) IssueAccess(user *models.User) (string, error) {
	return m.issue(user, models.TokenTypeAccess, m.accessTTL)
}

func (m *TokenManager) issue(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username:  user.Username,
		IsStaff:   user.IsStaff,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken validates an access token. Implements TokenVerifier.
func (m *TokenManager) VerifyToken(tokenString string) (*models.TokenClaims, error) {
	return m.parse(tokenString, models.TokenTypeAccess)
}

// VerifyRefresh validates a refresh token for the refresh endpoint.
func (m *TokenManager) VerifyRefresh(tokenString string) (*models.TokenClaims, error) {
	return m.parse(tokenString, models.TokenTypeRefresh)
}

func (m *TokenManager) parse(tokenString, wantType string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		m.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		m.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}
	if claims.TokenType != wantType {
		m.logger.Debug("token has wrong type", "type", claims.TokenType, "expected", wantType)
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close implements TokenVerifier. The manager holds no external resources.
func (m *TokenManager) Close() error {
	return nil
}
