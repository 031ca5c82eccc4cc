package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the JWT pair used by both administrator
// and resident sessions.
type TokenService interface {
	// GenerateTokens creates an access and refresh token for an account.
	GenerateTokens(accountID int64, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
