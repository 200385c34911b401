package model

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FieldID      uuid.UUID `json:"field_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	Topics       []Topic   `json:"topics,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt    time.Time `json:"created_at"`
}
