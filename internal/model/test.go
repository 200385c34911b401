package model

import (
	"time"

	"github.com/google/uuid"
)

// Test is an immutable mock-test definition. Duration and the marking policy
// are fixed once attempts exist against it.
type Test struct {
	ID                 uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title              string         `json:"title" gorm:"not null"`
	Description        *string        `json:"description,omitempty"`
	TestType           string         `json:"test_type" gorm:"not null"` // "section", "full_length", "custom"
	FieldID            *uuid.UUID     `json:"field_id,omitempty" gorm:"type:uuid;index"`
	SubjectID          *uuid.UUID     `json:"subject_id,omitempty" gorm:"type:uuid;index"`
	DurationMinutes    int            `json:"duration_minutes" gorm:"not null;default:60"`
	TotalQuestions     int            `json:"total_questions" gorm:"not null"`
	NegativeMarking    bool           `json:"negative_marking" gorm:"not null;default:false"`
	NegativeMarksValue float64        `json:"negative_marks_value" gorm:"not null;default:0"`
	PassingPercentage  float64        `json:"passing_percentage" gorm:"not null;default:40"`
	IsActive           bool           `json:"is_active" gorm:"not null;default:true"`
	Questions          []TestQuestion `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt          time.Time      `json:"created_at"`
}
