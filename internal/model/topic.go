package model

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectID    uuid.UUID `json:"subject_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  *string   `json:"description,omitempty"`
	StudyNotes   *string   `json:"study_notes,omitempty" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}
