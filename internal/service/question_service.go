package service

import (
	"context"

	"solo_quiz_backend/internal/model"
	"solo_quiz_backend/internal/repository"
)

// QuestionService covers the admin catalog surface: listing, manual authoring
// and AI-assisted authoring. Entries are validated on the way in; rows already
// in the table are trusted as-is.
type QuestionService struct {
	Repo *repository.QuestionRepository
	ai   FeedbackGenerator
}

func NewQuestionService(repo *repository.QuestionRepository, ai FeedbackGenerator) *QuestionService {
	return &QuestionService{Repo: repo, ai: ai}
}

type QuestionRequest struct {
	Topic       string   `json:"topic" binding:"required"`
	Level       string   `json:"level" binding:"required"`
	Question    string   `json:"question" binding:"required"`
	Options     []string `json:"options" binding:"required,len=4"`
	Correct     string   `json:"correctOption" binding:"required"`
	Explanation string   `json:"explanation" binding:"required"`
}

func (s *QuestionService) List() ([]model.Question, error) {
	return s.Repo.ListByTopic()
}

func (s *QuestionService) Create(req QuestionRequest) (*model.Question, error) {
	level, err := model.ParseSOLOLevel(req.Level)
	if err != nil {
		return nil, err
	}

	q, err := model.NewQuestion(req.Topic, level, req.Question, req.Options, req.Correct, req.Explanation)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Generate asks the AI collaborator to author a question. The result is
// returned for review, not inserted into the catalog.
func (s *QuestionService) Generate(ctx context.Context, topic, levelLabel string) (*model.Question, error) {
	level, err := model.ParseSOLOLevel(levelLabel)
	if err != nil {
		return nil, err
	}
	return s.ai.GenerateQuestion(ctx, topic, level)
}
