package repository

import (
	"context"
	"errors"

	"advisor/internal/domain/entity"
)

var (
	// ErrQuestionNotFound is returned when no question matches, including past the end of the catalog.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound is returned when an option ID is not in the catalog.
	ErrOptionNotFound = errors.New("option not found")
	// ErrSectionNotFound is returned when a section ID is not in the catalog.
	ErrSectionNotFound = errors.New("section not found")
)

// CatalogRepository is the read-only view over sections, questions and options.
// Questions are ordered by (section ID, question ID), the canonical traversal order.
type CatalogRepository interface {
	// FirstQuestion returns the first question in canonical order, or ErrQuestionNotFound for an empty catalog.
	FirstQuestion(ctx context.Context) (*entity.Question, error)

	// NextQuestionAfter returns the question strictly after (sectionID, questionID),
	// skipping sections without questions. ErrQuestionNotFound means the catalog is exhausted.
	NextQuestionAfter(ctx context.Context, sectionID, questionID int64) (*entity.Question, error)

	// OptionsFor returns the options of a question ordered by option ID.
	OptionsFor(ctx context.Context, questionID int64) ([]*entity.Option, error)

	FindOption(ctx context.Context, optionID int64) (*entity.Option, error)
	FindQuestion(ctx context.Context, questionID int64) (*entity.Question, error)
	FindSection(ctx context.Context, sectionID int64) (*entity.Section, error)
}
