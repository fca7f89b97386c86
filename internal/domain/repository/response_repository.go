package repository

import (
	"context"
	"errors"

	"advisor/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrResponseNotFound is returned by LatestFor when the user has not answered anything yet.
	ErrResponseNotFound = errors.New("response not found")
	// ErrDuplicateResponse is returned when the user already answered the question.
	ErrDuplicateResponse = errors.New("question already answered")
)

// ResponseRepository is the append-only response log. There is deliberately no update or delete.
type ResponseRepository interface {
	// Append inserts the response and fills its ID and CreatedAt.
	// Once Append returns, LatestFor observes the row.
	Append(ctx context.Context, response *entity.UserResponse) error

	// LatestFor returns the response with the largest ID for the user.
	LatestFor(ctx context.Context, userID uuid.UUID) (*entity.UserResponse, error)

	// AnsweredBy returns the user's answers joined with the catalog, oldest first.
	AnsweredBy(ctx context.Context, userID uuid.UUID) ([]*entity.AnsweredQuestion, error)
}
