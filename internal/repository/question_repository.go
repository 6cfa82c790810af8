package repository

import (
	"solo_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// ListOrdered returns the full catalog in quiz order. The (level_order, id)
// sort is a strict total order, so two enumerations always agree.
func (r *QuestionRepository) ListOrdered() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("level_order ASC, id ASC").Find(&questions).Error
	return questions, err
}

// ListByTopic returns the catalog grouped for the admin view.
func (r *QuestionRepository) ListByTopic() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("topic ASC, level_order ASC, id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}
