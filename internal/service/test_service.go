package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"prepdeck/internal/dto"
	"prepdeck/internal/repository"
)

type TestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTest(id uuid.UUID) (*dto.TestSummaryDTO, error)
}

type testService struct {
	testRepo repository.TestRepository
}

func NewTestService(testRepo repository.TestRepository) TestService {
	return &testService{testRepo: testRepo}
}

func (s *testService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllActive()
	if err != nil {
		log.Error().Err(err).Msg("failed to list active tests")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		var summary dto.TestSummaryDTO
		copier.Copy(&summary, &twc.Test)
		summary.QuestionCount = twc.QuestionCount
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *testService) GetTest(id uuid.UUID) (*dto.TestSummaryDTO, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("loading test %s: %w", id, err)
	}
	if !test.IsActive {
		return nil, ErrTestNotFound
	}

	var summary dto.TestSummaryDTO
	copier.Copy(&summary, test)
	summary.QuestionCount = test.TotalQuestions
	return &summary, nil
}
