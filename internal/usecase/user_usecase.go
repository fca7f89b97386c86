// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"advisor/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput returns the user together with a freshly issued access token.
type AuthOutput struct {
	AccessToken string
	ExpiresIn   int64 // seconds
	User        *entity.User
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
