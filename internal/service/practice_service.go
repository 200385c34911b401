package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"prepdeck/internal/dto"
	"prepdeck/internal/repository"
)

var ErrQuestionNotFound = errors.New("question not found")

// PracticeService checks free-practice answers and keeps the per-topic
// progress counters.
type PracticeService interface {
	CheckAnswer(userID uuid.UUID, req dto.PracticeAnswerDTO) (*dto.PracticeFeedbackDTO, error)
	GetProgress(userID uuid.UUID) ([]dto.TopicProgressDTO, error)
}

type practiceService struct {
	questionRepo repository.QuestionRepository
	progressRepo repository.ProgressRepository
}

func NewPracticeService(questionRepo repository.QuestionRepository, progressRepo repository.ProgressRepository) PracticeService {
	return &practiceService{questionRepo: questionRepo, progressRepo: progressRepo}
}

func (s *practiceService) CheckAnswer(userID uuid.UUID, req dto.PracticeAnswerDTO) (*dto.PracticeFeedbackDTO, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %s: %w", req.QuestionID, err)
	}

	correct := req.Selected == question.CorrectOption

	// Progress is best effort: a failed counter bump must not hide the
	// feedback from the user.
	if err := s.progressRepo.RecordAnswer(userID, question.TopicID, correct); err != nil {
		log.Warn().Err(err).
			Str("user_id", userID.String()).
			Str("topic_id", question.TopicID.String()).
			Msg("failed to record practice progress")
	}

	return &dto.PracticeFeedbackDTO{
		QuestionID:    question.ID,
		Correct:       correct,
		CorrectOption: question.CorrectOption,
		Explanation:   question.Explanation,
	}, nil
}

func (s *practiceService) GetProgress(userID uuid.UUID) ([]dto.TopicProgressDTO, error) {
	rows, err := s.progressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching progress: %w", err)
	}
	dtos := make([]dto.TopicProgressDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.TopicProgressDTO{
			TopicID:            row.TopicID,
			TopicName:          row.Topic.Name,
			QuestionsAttempted: row.QuestionsAttempted,
			QuestionsCorrect:   row.QuestionsCorrect,
			LastPracticedAt:    row.LastPracticedAt,
		})
	}
	return dtos, nil
}
