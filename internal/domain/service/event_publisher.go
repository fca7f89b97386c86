package service

import (
	"context"
	"time"
)

// QuestionnaireCompletedEvent is emitted once a user answers the last question of the catalog.
// Downstream consumers (persona bucketing) read the answers from the response log.
type QuestionnaireCompletedEvent struct {
	SessionID     string    `json:"session_id,omitempty"`
	UserID        string    `json:"user_id"`
	AnsweredCount int       `json:"answered_count"`
	LastQuestion  int64     `json:"last_question_id"`
	CompletedAt   time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQuestionnaireCompleted publishes a completion event for async processing
	PublishQuestionnaireCompleted(ctx context.Context, event *QuestionnaireCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
