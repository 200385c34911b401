package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TestAttempt is one user's timed run through a test. While CompletedAt is
// null the attempt is open and its Answers column is rewritten by autosave;
// once CompletedAt is set the row is append-only history.
//
// A partial unique index on (user_id, test_id) WHERE completed_at IS NULL
// (created in the startup migration) guarantees at most one open attempt per
// user and test, so two racing start requests cannot both insert.
type TestAttempt struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	TestID           uuid.UUID      `json:"test_id" gorm:"type:uuid;not null;index"`
	Test             Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StartedAt        time.Time      `json:"started_at" gorm:"not null;autoCreateTime"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	TotalQuestions   int            `json:"total_questions" gorm:"not null"`
	Answers          datatypes.JSON `json:"answers" gorm:"type:jsonb;not null;default:'{}'"`
	CorrectAnswers   int            `json:"correct_answers" gorm:"not null;default:0"`
	WrongAnswers     int            `json:"wrong_answers" gorm:"not null;default:0"`
	SkippedAnswers   int            `json:"skipped_answers" gorm:"not null;default:0"`
	Score            float64        `json:"score" gorm:"not null;default:0"`
	MaxScore         float64        `json:"max_score" gorm:"not null"`
	Percentage       float64        `json:"percentage" gorm:"not null;default:0"`
	IsPassed         *bool          `json:"is_passed,omitempty"`
	TimeTakenSeconds *int           `json:"time_taken_seconds,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}
