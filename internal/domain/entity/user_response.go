package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is one row of the append-only response log.
// SectionID is denormalised from the question for cheap progress lookups.
type UserResponse struct {
	ID         int64 // monotonic response_row_id
	UserID     uuid.UUID
	SectionID  int64
	QuestionID int64
	OptionID   int64
	CreatedAt  time.Time
}

// AnsweredQuestion is a read projection of a response joined with its catalog rows.
type AnsweredQuestion struct {
	ResponseID  int64
	SectionID   int64
	SectionName string
	QuestionID  int64
	Prompt      string
	OptionID    int64
	OptionText  string
	AnsweredAt  time.Time
}
