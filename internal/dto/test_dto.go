package dto

import (
	"time"

	"github.com/google/uuid"
)

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	TestType           string     `json:"test_type"`
	FieldID            *uuid.UUID `json:"field_id,omitempty"`
	SubjectID          *uuid.UUID `json:"subject_id,omitempty"`
	DurationMinutes    int        `json:"duration_minutes"`
	TotalQuestions     int        `json:"total_questions"`
	NegativeMarking    bool       `json:"negative_marking"`
	NegativeMarksValue float64    `json:"negative_marks_value"`
	PassingPercentage  float64    `json:"passing_percentage"`
	QuestionCount      int        `json:"question_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

// AttemptQuestionDTO is a question as seen from inside a running attempt:
// options only, never the correct letter or the explanation.
type AttemptQuestionDTO struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	OptionA      string    `json:"option_a"`
	OptionB      string    `json:"option_b"`
	OptionC      string    `json:"option_c"`
	OptionD      string    `json:"option_d"`
	Difficulty   string    `json:"difficulty"`
}

// ReviewQuestionDTO is the full question shown on the result screen.
type ReviewQuestionDTO struct {
	ID            uuid.UUID `json:"id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption string    `json:"correct_option"`
	Explanation   *string   `json:"explanation,omitempty"`
	Difficulty    string    `json:"difficulty"`
}
