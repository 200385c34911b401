package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress accumulates per-topic practice counters. One row per
// (user, topic), upserted on every checked practice answer.
type UserProgress struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_topic,priority:1"`
	TopicID            uuid.UUID  `json:"topic_id" gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_topic,priority:2"`
	Topic              Topic      `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	QuestionsAttempted int        `json:"questions_attempted" gorm:"not null;default:0"`
	QuestionsCorrect   int        `json:"questions_correct" gorm:"not null;default:0"`
	LastPracticedAt    *time.Time `json:"last_practiced_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
