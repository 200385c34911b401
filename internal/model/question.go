package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is a four-option multiple choice question. CorrectOption holds the
// letter "A".."D"; it is never exposed through the in-progress attempt DTOs.
type Question struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TopicID       uuid.UUID `json:"topic_id" gorm:"type:uuid;not null;index"`
	QuestionText  string    `json:"question_text" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"not null"`
	OptionB       string    `json:"option_b" gorm:"not null"`
	OptionC       string    `json:"option_c" gorm:"not null"`
	OptionD       string    `json:"option_d" gorm:"not null"`
	CorrectOption string    `json:"correct_option" gorm:"not null"`
	Explanation   *string   `json:"explanation,omitempty" gorm:"type:text"`
	Difficulty    string    `json:"difficulty" gorm:"not null;default:'medium'"`
	IsActive      bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"created_at"`
}
