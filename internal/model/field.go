package model

import (
	"time"

	"github.com/google/uuid"
)

// Field is a top-level exam stream (e.g. "Engineering", "Medical").
type Field struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	Color        *string   `json:"color,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	Subjects     []Subject `json:"subjects,omitempty" gorm:"foreignKey:FieldID"`
	CreatedAt    time.Time `json:"created_at"`
}
