package repository

import (
	"solo_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

// ListWithQuestions joins attempts against the catalog, newest first. An empty
// username means all participants.
func (r *AttemptRepository) ListWithQuestions(username string) ([]model.AttemptWithQuestion, error) {
	var rows []model.AttemptWithQuestion
	query := r.DB.Model(&model.Attempt{}).
		Select("attempts.username, attempts.is_correct, attempts.timestamp, questions.level, questions.topic").
		Joins("JOIN questions ON questions.id = attempts.question_id").
		Order("attempts.timestamp DESC")
	if username != "" {
		query = query.Where("attempts.username = ?", username)
	}
	err := query.Scan(&rows).Error
	return rows, err
}

func (r *AttemptRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).Where("username = ?", username).Count(&count).Error
	return count, err
}
