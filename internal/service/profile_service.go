package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"prepdeck/internal/dto"
	"prepdeck/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService interface {
	Get(userID uuid.UUID) (*dto.ProfileDTO, error)
	Update(userID uuid.UUID, req dto.ProfileUpdateDTO) (*dto.ProfileDTO, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(userID uuid.UUID) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("loading profile %s: %w", userID, err)
	}
	var resp dto.ProfileDTO
	copier.Copy(&resp, profile)
	return &resp, nil
}

func (s *profileService) Update(userID uuid.UUID, req dto.ProfileUpdateDTO) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("loading profile %s: %w", userID, err)
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.SelectedFieldID != nil {
		profile.SelectedFieldID = req.SelectedFieldID
	}
	if req.TargetYear != nil {
		profile.TargetYear = req.TargetYear
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("updating profile %s: %w", userID, err)
	}

	var resp dto.ProfileDTO
	copier.Copy(&resp, profile)
	return &resp, nil
}
