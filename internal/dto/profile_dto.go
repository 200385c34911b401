package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FullName        *string    `json:"full_name,omitempty"`
	AvatarURL       *string    `json:"avatar_url,omitempty"`
	SelectedFieldID *uuid.UUID `json:"selected_field_id,omitempty"`
	TargetYear      *int       `json:"target_year,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ProfileUpdateDTO struct {
	FullName        *string    `json:"full_name"`
	AvatarURL       *string    `json:"avatar_url"`
	SelectedFieldID *uuid.UUID `json:"selected_field_id"`
	TargetYear      *int       `json:"target_year" binding:"omitempty,min=2024,max=2100"`
}
