package model

import (
	"time"

	"github.com/google/uuid"
)

type BookmarkedQuestion struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_question,priority:1"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_question,priority:2"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time `json:"created_at"`
}
