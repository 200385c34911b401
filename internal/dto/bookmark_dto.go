package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookmarkCreateDTO struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
}

type BookmarkDTO struct {
	ID        uuid.UUID         `json:"id"`
	Question  ReviewQuestionDTO `json:"question"`
	CreatedAt time.Time         `json:"created_at"`
}
