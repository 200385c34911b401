package dto

import (
	"time"

	"github.com/google/uuid"
)

// PracticeAnswerDTO is a single checked answer in free practice mode.
type PracticeAnswerDTO struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Selected   string    `json:"selected" binding:"required,oneof=A B C D"`
}

// PracticeFeedbackDTO reveals correctness and the explanation immediately,
// unlike timed attempts.
type PracticeFeedbackDTO struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Correct       bool      `json:"correct"`
	CorrectOption string    `json:"correct_option"`
	Explanation   *string   `json:"explanation,omitempty"`
}

// TopicProgressDTO is one row of the user's per-topic practice counters.
type TopicProgressDTO struct {
	TopicID            uuid.UUID  `json:"topic_id"`
	TopicName          string     `json:"topic_name"`
	QuestionsAttempted int        `json:"questions_attempted"`
	QuestionsCorrect   int        `json:"questions_correct"`
	LastPracticedAt    *time.Time `json:"last_practiced_at,omitempty"`
}
