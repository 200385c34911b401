package model

import "github.com/google/uuid"

// TestQuestion pins a question into a test at a fixed position. The ordering
// is decided when the test is assembled and never reshuffled afterwards, so
// resumed attempts always see the same sequence.
type TestQuestion struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TestID        uuid.UUID `json:"test_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_test_question_order,priority:1"`
	QuestionID    uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	QuestionOrder int       `json:"question_order" gorm:"not null;default:0;uniqueIndex:idx_test_question_order,priority:2"`
}
