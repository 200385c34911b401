package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"prepdeck/internal/dto"
	"prepdeck/internal/model"
	"prepdeck/internal/repository"
)

type BookmarkService interface {
	Add(userID uuid.UUID, req dto.BookmarkCreateDTO) error
	Remove(userID, questionID uuid.UUID) error
	List(userID uuid.UUID) ([]dto.BookmarkDTO, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkService) Add(userID uuid.UUID, req dto.BookmarkCreateDTO) error {
	bookmark := model.BookmarkedQuestion{UserID: userID, QuestionID: req.QuestionID}
	if err := s.bookmarkRepo.Create(&bookmark); err != nil {
		return fmt.Errorf("bookmarking question %s: %w", req.QuestionID, err)
	}
	return nil
}

func (s *bookmarkService) Remove(userID, questionID uuid.UUID) error {
	if err := s.bookmarkRepo.Delete(userID, questionID); err != nil {
		return fmt.Errorf("removing bookmark for question %s: %w", questionID, err)
	}
	return nil
}

func (s *bookmarkService) List(userID uuid.UUID) ([]dto.BookmarkDTO, error) {
	bookmarks, err := s.bookmarkRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching bookmarks: %w", err)
	}
	dtos := make([]dto.BookmarkDTO, 0, len(bookmarks))
	for _, b := range bookmarks {
		item := dto.BookmarkDTO{ID: b.ID, CreatedAt: b.CreatedAt}
		copier.Copy(&item.Question, &b.Question)
		dtos = append(dtos, item)
	}
	return dtos, nil
}
