package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepdeck/internal/model"
)

type BookmarkRepository interface {
	Create(bookmark *model.BookmarkedQuestion) error
	Delete(userID, questionID uuid.UUID) error
	FindAllByUser(userID uuid.UUID) ([]model.BookmarkedQuestion, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create inserts a bookmark; re-bookmarking the same question is a no-op
// thanks to the (user_id, question_id) unique index.
func (r *bookmarkRepository) Create(bookmark *model.BookmarkedQuestion) error {
	err := r.db.Create(bookmark).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *bookmarkRepository) Delete(userID, questionID uuid.UUID) error {
	return r.db.
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&model.BookmarkedQuestion{}).Error
}

func (r *bookmarkRepository) FindAllByUser(userID uuid.UUID) ([]model.BookmarkedQuestion, error) {
	var bookmarks []model.BookmarkedQuestion
	err := r.db.
		Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}
