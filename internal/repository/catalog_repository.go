package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepdeck/internal/model"
)

// CatalogRepository serves the read-only content hierarchy:
// fields → subjects → topics.
type CatalogRepository interface {
	FindActiveFields() ([]model.Field, error)
	FindActiveSubjectsByField(fieldID uuid.UUID) ([]model.Subject, error)
	FindActiveTopicsBySubject(subjectID uuid.UUID) ([]model.Topic, error)
	FindTopicByID(id uuid.UUID) (*model.Topic, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindActiveFields() ([]model.Field, error) {
	var fields []model.Field
	err := r.db.Where("is_active = ?", true).Order("display_order ASC").Find(&fields).Error
	return fields, err
}

func (r *catalogRepository) FindActiveSubjectsByField(fieldID uuid.UUID) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.
		Where("field_id = ? AND is_active = ?", fieldID, true).
		Order("display_order ASC").
		Find(&subjects).Error
	return subjects, err
}

func (r *catalogRepository) FindActiveTopicsBySubject(subjectID uuid.UUID) ([]model.Topic, error) {
	var topics []model.Topic
	err := r.db.
		Where("subject_id = ? AND is_active = ?", subjectID, true).
		Order("display_order ASC").
		Find(&topics).Error
	return topics, err
}

func (r *catalogRepository) FindTopicByID(id uuid.UUID) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}
