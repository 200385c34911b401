package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepdeck/internal/model"
)

type QuestionRepository interface {
	FindByID(id uuid.UUID) (*model.Question, error)
	FindActiveByTopicID(topicID uuid.UUID) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindActiveByTopicID(topicID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("topic_id = ? AND is_active = ?", topicID, true).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}
