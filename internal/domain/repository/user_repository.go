// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"advisor/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// LockByID takes a row lock on the user for the rest of the current transaction.
	// It serialises writers acting on behalf of the same user.
	LockByID(ctx context.Context, id uuid.UUID) error
}
