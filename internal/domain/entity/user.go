// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account known to the auth layer. The questionnaire only ever consumes its ID.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash; never serialised.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
