package service

import (
	"context"
	"strconv"
	"sync"

	"solo_quiz_backend/internal/model"
	"solo_quiz_backend/internal/util"
	"solo_quiz_backend/pkg/logger"
	"solo_quiz_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// QuestionSource is the slice of the question repository the engine reads.
type QuestionSource interface {
	ListOrdered() ([]model.Question, error)
}

// AttemptSink persists durable attempt rows.
type AttemptSink interface {
	Create(attempt *model.Attempt) error
}

// Fallback texts served whenever the AI collaborator fails. A submission must
// never fail because the collaborator did.
const (
	FallbackFeedback = "Great effort! Keep building your understanding of Knowledge Graphs step by step."
	FallbackAnalysis = "You're making excellent progress in your Knowledge Graph learning journey! Keep exploring and connecting concepts across different levels."
	FallbackHint     = "Think about the fundamental concepts we've covered in this topic. Consider the relationships between different elements."
)

// QuizService drives a participant through the globally ordered question
// sequence: one question at a time, exact-match scoring, durable attempt per
// submission, AI feedback with fallback.
type QuizService struct {
	sessions  SessionStore
	questions QuestionSource
	attempts  AttemptSink
	ai        FeedbackGenerator
	perf      *PerformanceService

	// one lock per session serializes overlapping submissions (rapid
	// double-submit), so the stale check observes a consistent index
	locks sync.Map
}

func NewQuizService(sessions SessionStore, questions QuestionSource, attempts AttemptSink, ai FeedbackGenerator, perf *PerformanceService) *QuizService {
	return &QuizService{
		sessions:  sessions,
		questions: questions,
		attempts:  attempts,
		ai:        ai,
		perf:      perf,
	}
}

func (s *QuizService) sessionLock(sessionID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// QuestionView is the question as shown to the participant: the correct option
// and explanation stay server-side until the answer is submitted.
type QuestionView struct {
	ID             uint            `json:"id"`
	Topic          string          `json:"topic"`
	Level          model.SOLOLevel `json:"level"`
	Question       string          `json:"question"`
	Options        []string        `json:"options"`
	Index          int             `json:"index"`
	TotalQuestions int             `json:"totalQuestions"`
}

type SubmitResult struct {
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
	AIFeedback  string `json:"ai_feedback"`
	Finished    bool   `json:"finished"`
	Score       int    `json:"score"`
}

type QuizResults struct {
	Username        string                                     `json:"username"`
	Score           int                                        `json:"score"`
	TotalQuestions  int                                        `json:"totalQuestions"`
	Percentage      float64                                    `json:"percentage"`
	SoloPerformance map[model.SOLOLevel]model.LevelPerformance `json:"soloPerformance"`
	AIAnalysis      string                                     `json:"aiAnalysis"`
	Answers         []model.AnswerRecord                       `json:"answers"`
}

// StartQuiz resets the session unconditionally: starting a new quiz from any
// state zeroes the ordinal and score and clears the history.
func (s *QuizService) StartQuiz(ctx context.Context, sessionID, username string) (*model.QuizSession, error) {
	if username == "" {
		username = util.DefaultUsername
	}

	session := model.NewQuizSession(username)
	if err := s.sessions.Put(ctx, sessionID, session); err != nil {
		return nil, err
	}

	monitoring.QuizSessionsStarted.Inc()
	logger.Log.Info("quiz started", zap.String("username", username))
	return session, nil
}

// CurrentQuestion returns the question at the session's ordinal, or
// ErrQuizComplete once the catalog is exhausted.
func (s *QuizService) CurrentQuestion(ctx context.Context, sessionID string) (*QuestionView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListOrdered()
	if err != nil {
		return nil, err
	}

	if session.CurrentIndex >= len(questions) {
		return nil, util.ErrQuizComplete
	}

	q := questions[session.CurrentIndex]
	opts, err := q.OptionList()
	if err != nil {
		return nil, err
	}

	return &QuestionView{
		ID:             q.ID,
		Topic:          q.Topic,
		Level:          q.Level,
		Question:       q.Question,
		Options:        opts,
		Index:          session.CurrentIndex,
		TotalQuestions: len(questions),
	}, nil
}

// SubmitAnswer validates and scores one answer. questionIndex is the ordinal
// the client believes it is answering; a mismatch with the session's current
// ordinal is a stale submission and mutates nothing. The durable attempt row
// is written before the session advances, so an accepted answer is never lost.
func (s *QuizService) SubmitAnswer(ctx context.Context, sessionID string, questionIndex int, selectedOption string) (*SubmitResult, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListOrdered()
	if err != nil {
		return nil, err
	}

	if session.CurrentIndex >= len(questions) {
		return nil, util.ErrQuizComplete
	}
	if questionIndex != session.CurrentIndex {
		return nil, util.ErrStaleSubmission
	}

	q := questions[session.CurrentIndex]
	isCorrect := selectedOption != "" && selectedOption == q.CorrectOption

	attempt := &model.Attempt{
		Username:   session.Username,
		QuestionID: q.ID,
		IsCorrect:  isCorrect,
	}
	if selectedOption != "" {
		attempt.SelectedOption = &selectedOption
	}
	if err := s.attempts.Create(attempt); err != nil {
		// 持久化失败时不推进会话，客户端可重试同一题
		return nil, err
	}

	if isCorrect {
		session.Score++
	}
	session.Answers = append(session.Answers, model.AnswerRecord{
		QuestionID:     q.ID,
		SelectedOption: selectedOption,
		IsCorrect:      isCorrect,
		Level:          q.Level,
		Topic:          q.Topic,
		QuestionText:   q.Question,
	})
	session.CurrentIndex++

	// 会话写入失败时重试会追加第二条 attempt 记录
	if err := s.sessions.Put(ctx, sessionID, session); err != nil {
		return nil, err
	}

	monitoring.AnswersSubmitted.WithLabelValues(strconv.FormatBool(isCorrect)).Inc()

	feedback, err := s.ai.Feedback(ctx, &q, selectedOption, isCorrect)
	if err != nil {
		monitoring.AIFallbacks.WithLabelValues("feedback").Inc()
		logger.Log.Warn("AI feedback unavailable, serving fallback", zap.Error(err))
		feedback = FallbackFeedback
	}

	return &SubmitResult{
		IsCorrect:   isCorrect,
		Explanation: q.Explanation,
		AIFeedback:  feedback,
		Finished:    session.CurrentIndex >= len(questions),
		Score:       session.Score,
	}, nil
}

// Results computes the end-of-session view: final score, percentage, per-level
// breakdown and the comprehensive AI analysis.
func (s *QuizService) Results(ctx context.Context, sessionID string) (*QuizResults, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListOrdered()
	if err != nil {
		return nil, err
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(session.Score) / float64(total) * 100
	}

	perf := s.perf.LevelBreakdown(session.Answers)

	analysis, err := s.ai.Analysis(ctx, session.Answers, perf)
	if err != nil {
		monitoring.AIFallbacks.WithLabelValues("analysis").Inc()
		logger.Log.Warn("AI analysis unavailable, serving fallback", zap.Error(err))
		analysis = FallbackAnalysis
	}

	return &QuizResults{
		Username:        session.Username,
		Score:           session.Score,
		TotalQuestions:  total,
		Percentage:      percentage,
		SoloPerformance: perf,
		AIAnalysis:      analysis,
		Answers:         session.Answers,
	}, nil
}

// Hint proxies the hint request to the collaborator, falling back to the
// static hint on any failure.
func (s *QuizService) Hint(ctx context.Context, questionText string, level model.SOLOLevel, topic string) string {
	hint, err := s.ai.Hint(ctx, questionText, level, topic)
	if err != nil {
		monitoring.AIFallbacks.WithLabelValues("hint").Inc()
		logger.Log.Warn("AI hint unavailable, serving fallback", zap.Error(err))
		return FallbackHint
	}
	return hint
}

// Session exposes the raw session state, used by the progress view for
// participant scoping.
func (s *QuizService) Session(ctx context.Context, sessionID string) (*model.QuizSession, error) {
	return s.sessions.Get(ctx, sessionID)
}
