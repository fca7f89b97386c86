package model

import (
	"time"

	"github.com/google/uuid"
)

// UserResponseModel mirrors the append-only 'user_responses' table.
// The auto-increment ID orders a user's answers; the unique (user_id, question_id) index
// rejects a second answer to the same question.
type UserResponseModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_responses_user_question,priority:1"`
	SectionID  int64     `gorm:"not null"`
	QuestionID int64     `gorm:"not null;uniqueIndex:idx_user_responses_user_question,priority:2"`
	OptionID   int64     `gorm:"not null"`
	CreatedAt  time.Time

	Section  *SectionModel  `gorm:"foreignKey:SectionID"`
	Question *QuestionModel `gorm:"foreignKey:QuestionID"`
	Option   *OptionModel   `gorm:"foreignKey:OptionID"`
}

// TableName explicitly sets the table name for GORM.
func (UserResponseModel) TableName() string {
	return "user_responses"
}
