package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the hosted auth user. The ID equals the auth provider's
// user id (JWT "sub" claim), so it is not database-generated.
type Profile struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email           string     `json:"email" gorm:"not null"`
	FullName        *string    `json:"full_name,omitempty"`
	AvatarURL       *string    `json:"avatar_url,omitempty"`
	SelectedFieldID *uuid.UUID `json:"selected_field_id,omitempty" gorm:"type:uuid"`
	TargetYear      *int       `json:"target_year,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
