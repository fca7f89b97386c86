package auth

import (
	"time"

	"advisor/config"
	"advisor/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenIssuer = "advisor"

// jwtService is a concrete implementation of the TokenService interface using HS256-signed JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := 15 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs a token whose subject is the user ID.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    accessTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken verifies signature, issuer and expiry and returns the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(accessTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.New("invalid access token claims")
	}

	return claims, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
