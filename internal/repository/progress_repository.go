package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prepdeck/internal/model"
)

type ProgressRepository interface {
	// RecordAnswer upserts the (user, topic) row, bumping the attempted
	// counter and, when correct, the correct counter.
	RecordAnswer(userID, topicID uuid.UUID, correct bool) error
	FindAllByUser(userID uuid.UUID) ([]model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) RecordAnswer(userID, topicID uuid.UUID, correct bool) error {
	now := time.Now().UTC()
	correctInc := 0
	if correct {
		correctInc = 1
	}
	row := model.UserProgress{
		UserID:             userID,
		TopicID:            topicID,
		QuestionsAttempted: 1,
		QuestionsCorrect:   correctInc,
		LastPracticedAt:    &now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"questions_attempted": gorm.Expr("user_progresses.questions_attempted + 1"),
			"questions_correct":   gorm.Expr("user_progresses.questions_correct + ?", correctInc),
			"last_practiced_at":   now,
			"updated_at":          now,
		}),
	}).Create(&row).Error
}

func (r *progressRepository) FindAllByUser(userID uuid.UUID) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.db.
		Preload("Topic").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}
