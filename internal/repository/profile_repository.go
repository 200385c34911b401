package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepdeck/internal/model"
)

type ProfileRepository interface {
	FindByID(id uuid.UUID) (*model.Profile, error)
	Update(profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}
