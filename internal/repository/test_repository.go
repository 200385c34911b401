package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepdeck/internal/model"
)

type TestRepository interface {
	FindAllActive() ([]struct {
		model.Test
		QuestionCount int
	}, error)
	FindByID(id uuid.UUID) (*model.Test, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) FindAllActive() ([]struct {
	model.Test
	QuestionCount int
}, error) {
	var results []struct {
		model.Test
		QuestionCount int
	}
	err := r.db.Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM test_questions WHERE test_questions.test_id = tests.id) as question_count").
		Where("tests.is_active = ?", true).
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) FindByID(id uuid.UUID) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, "id = ?", id).Error
	return &test, err
}

// FindByIDWithQuestions loads the test and its questions in the fixed
// attempt order (test_questions.question_order). Resume relies on this order
// never changing for an existing test.
func (r *testRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_questions.question_order ASC")
		}).
		Preload("Questions.Question").
		First(&test, "id = ?", id).Error
	return &test, err
}
