package dto

import (
	"time"

	"github.com/google/uuid"
)

// AnswerEntryDTO mirrors one entry of the persisted answer map.
type AnswerEntryDTO struct {
	Selected string `json:"selected"`
	Marked   bool   `json:"marked"`
}

// AttemptSessionDTO is the live view returned by start/resume and by the
// mutation endpoints: enough for a client to render the running attempt.
type AttemptSessionDTO struct {
	AttemptID        uuid.UUID                 `json:"attempt_id"`
	TestID           uuid.UUID                 `json:"test_id"`
	TestTitle        string                    `json:"test_title"`
	State            string                    `json:"state"`
	Resumed          bool                      `json:"resumed"`
	Questions        []AttemptQuestionDTO      `json:"questions"`
	Answers          map[string]AnswerEntryDTO `json:"answers"`
	CurrentIndex     int                       `json:"current_index"`
	RemainingSeconds int                       `json:"remaining_seconds"`
}

// SelectAnswerDTO records or changes the selected option for one question.
type SelectAnswerDTO struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Selected   string    `json:"selected" binding:"required,oneof=A B C D"`
}

// ToggleMarkDTO flips the marked-for-review flag for one question.
type ToggleMarkDTO struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
}

// NavigateDTO moves the current-question pointer.
type NavigateDTO struct {
	Index *int `json:"index" binding:"required,min=0"`
}

// AttemptStateDTO is the light snapshot returned by the mutation endpoints.
type AttemptStateDTO struct {
	AttemptID        uuid.UUID                 `json:"attempt_id"`
	State            string                    `json:"state"`
	Answers          map[string]AnswerEntryDTO `json:"answers"`
	CurrentIndex     int                       `json:"current_index"`
	RemainingSeconds int                       `json:"remaining_seconds"`
}

// AttemptResultDTO is the terminal record of a completed attempt.
type AttemptResultDTO struct {
	AttemptID        uuid.UUID                 `json:"attempt_id"`
	TestID           uuid.UUID                 `json:"test_id"`
	TestTitle        string                    `json:"test_title"`
	StartedAt        time.Time                 `json:"started_at"`
	CompletedAt      *time.Time                `json:"completed_at,omitempty"`
	TotalQuestions   int                       `json:"total_questions"`
	CorrectAnswers   int                       `json:"correct_answers"`
	WrongAnswers     int                       `json:"wrong_answers"`
	SkippedAnswers   int                       `json:"skipped_answers"`
	Score            float64                   `json:"score"`
	MaxScore         float64                   `json:"max_score"`
	Percentage       float64                   `json:"percentage"`
	IsPassed         *bool                     `json:"is_passed,omitempty"`
	TimeTakenSeconds *int                      `json:"time_taken_seconds,omitempty"`
	Answers          map[string]AnswerEntryDTO `json:"answers"`
	Questions        []ReviewQuestionDTO       `json:"questions,omitempty"`
}

// AttemptSummaryDTO is one row of a user's attempt history.
type AttemptSummaryDTO struct {
	ID             uuid.UUID  `json:"id"`
	TestID         uuid.UUID  `json:"test_id"`
	TestTitle      string     `json:"test_title,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	Score          float64    `json:"score"`
	Percentage     float64    `json:"percentage"`
	IsPassed       *bool      `json:"is_passed,omitempty"`
}
