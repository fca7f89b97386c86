package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
