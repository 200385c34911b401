package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"prepdeck/internal/model"
)

// ErrAttemptCompleted is returned when a write targets an attempt whose
// completed_at is already set. Completed attempts are append-only history.
var ErrAttemptCompleted = errors.New("attempt is already completed")

// CompletionFields are the derived values written exactly once when an
// attempt transitions to completed.
type CompletionFields struct {
	Answers          datatypes.JSON
	CorrectAnswers   int
	WrongAnswers     int
	SkippedAnswers   int
	Score            float64
	Percentage       float64
	IsPassed         bool
	TimeTakenSeconds int
}

type AttemptRepository interface {
	// CreateOrResume returns the user's open attempt for the test, creating
	// one if none exists. The partial unique index on open attempts makes
	// this safe against two racing start requests: the loser's insert fails
	// with a duplicate-key error and the winner's row is fetched instead.
	CreateOrResume(userID, testID uuid.UUID, totalQuestions int) (*model.TestAttempt, bool, error)
	FindByID(id uuid.UUID) (*model.TestAttempt, error)
	FindAllByTestAndUser(testID, userID uuid.UUID) ([]model.TestAttempt, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]model.TestAttempt, error)
	UpdateAnswers(id uuid.UUID, answers datatypes.JSON) error
	Complete(id uuid.UUID, fields CompletionFields) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) findOpen(userID, testID uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.
		Where("user_id = ? AND test_id = ? AND completed_at IS NULL", userID, testID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) CreateOrResume(userID, testID uuid.UUID, totalQuestions int) (*model.TestAttempt, bool, error) {
	if attempt, err := r.findOpen(userID, testID); err == nil {
		return attempt, true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	attempt := model.TestAttempt{
		UserID:         userID,
		TestID:         testID,
		TotalQuestions: totalQuestions,
		MaxScore:       float64(totalQuestions),
		Answers:        datatypes.JSON([]byte(`{}`)),
	}
	err := r.db.Create(&attempt).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent start; resume the winner's row.
		existing, findErr := r.findOpen(userID, testID)
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &attempt, false, nil
}

func (r *attemptRepository) FindByID(id uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.Preload("Test").First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByTestAndUser(testID, userID uuid.UUID) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.
		Where("test_id = ? AND user_id = ?", testID, userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.
		Preload("Test").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// UpdateAnswers overwrites the whole answer map (autosave semantics,
// last-write-wins). Completed attempts are never touched.
func (r *attemptRepository) UpdateAnswers(id uuid.UUID, answers datatypes.JSON) error {
	return r.db.Model(&model.TestAttempt{}).
		Where("id = ? AND completed_at IS NULL", id).
		Update("answers", answers).Error
}

// Complete writes the terminal record. The completed_at IS NULL guard makes
// the transition idempotent at the database: a second completion attempt
// affects zero rows and reports ErrAttemptCompleted.
func (r *attemptRepository) Complete(id uuid.UUID, fields CompletionFields) error {
	now := time.Now().UTC()
	res := r.db.Model(&model.TestAttempt{}).
		Where("id = ? AND completed_at IS NULL", id).
		Updates(map[string]interface{}{
			"completed_at":       now,
			"answers":            fields.Answers,
			"correct_answers":    fields.CorrectAnswers,
			"wrong_answers":      fields.WrongAnswers,
			"skipped_answers":    fields.SkippedAnswers,
			"score":              fields.Score,
			"percentage":         fields.Percentage,
			"is_passed":          fields.IsPassed,
			"time_taken_seconds": fields.TimeTakenSeconds,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAttemptCompleted
	}
	return nil
}
