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

var ErrTopicNotFound = errors.New("topic not found")

// CatalogService serves the content-browsing hierarchy and the practice
// question feed.
type CatalogService interface {
	GetFields() ([]dto.FieldDTO, error)
	GetSubjects(fieldID uuid.UUID) ([]dto.SubjectDTO, error)
	GetTopics(subjectID uuid.UUID) ([]dto.TopicDTO, error)
	GetTopicQuestions(topicID uuid.UUID) ([]dto.PracticeQuestionDTO, error)
}

type catalogService struct {
	catalogRepo  repository.CatalogRepository
	questionRepo repository.QuestionRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository, questionRepo repository.QuestionRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, questionRepo: questionRepo}
}

func (s *catalogService) GetFields() ([]dto.FieldDTO, error) {
	fields, err := s.catalogRepo.FindActiveFields()
	if err != nil {
		return nil, fmt.Errorf("fetching fields: %w", err)
	}
	dtos := make([]dto.FieldDTO, 0, len(fields))
	for _, f := range fields {
		var item dto.FieldDTO
		copier.Copy(&item, &f)
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *catalogService) GetSubjects(fieldID uuid.UUID) ([]dto.SubjectDTO, error) {
	subjects, err := s.catalogRepo.FindActiveSubjectsByField(fieldID)
	if err != nil {
		return nil, fmt.Errorf("fetching subjects for field %s: %w", fieldID, err)
	}
	dtos := make([]dto.SubjectDTO, 0, len(subjects))
	for _, sub := range subjects {
		var item dto.SubjectDTO
		copier.Copy(&item, &sub)
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *catalogService) GetTopics(subjectID uuid.UUID) ([]dto.TopicDTO, error) {
	topics, err := s.catalogRepo.FindActiveTopicsBySubject(subjectID)
	if err != nil {
		return nil, fmt.Errorf("fetching topics for subject %s: %w", subjectID, err)
	}
	dtos := make([]dto.TopicDTO, 0, len(topics))
	for _, topic := range topics {
		var item dto.TopicDTO
		copier.Copy(&item, &topic)
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *catalogService) GetTopicQuestions(topicID uuid.UUID) ([]dto.PracticeQuestionDTO, error) {
	if _, err := s.catalogRepo.FindTopicByID(topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("loading topic %s: %w", topicID, err)
	}
	questions, err := s.questionRepo.FindActiveByTopicID(topicID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for topic %s: %w", topicID, err)
	}
	dtos := make([]dto.PracticeQuestionDTO, 0, len(questions))
	for _, q := range questions {
		var item dto.PracticeQuestionDTO
		copier.Copy(&item, &q)
		dtos = append(dtos, item)
	}
	return dtos, nil
}
