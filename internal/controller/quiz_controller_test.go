package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/middleware"
	"solo_quiz_backend/internal/model"
	"solo_quiz_backend/internal/service"
	"solo_quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type stubQuestions struct {
	questions []model.Question
}

func (s *stubQuestions) ListOrdered() ([]model.Question, error) {
	return s.questions, nil
}

type stubAttempts struct {
	created  []*model.Attempt
	lastUser string
}

func (s *stubAttempts) Create(attempt *model.Attempt) error {
	s.created = append(s.created, attempt)
	return nil
}

func (s *stubAttempts) ListWithQuestions(username string) ([]model.AttemptWithQuestion, error) {
	s.lastUser = username
	out := make([]model.AttemptWithQuestion, 0, len(s.created))
	for _, a := range s.created {
		out = append(out, model.AttemptWithQuestion{
			Username:  a.Username,
			IsCorrect: a.IsCorrect,
			Level:     model.PreStructural,
			Topic:     "Basics of Knowledge Graphs",
			Timestamp: time.Now(),
		})
	}
	return out, nil
}

type stubAI struct{ fail bool }

func (s *stubAI) Hint(_ context.Context, _ string, _ model.SOLOLevel, _ string) (string, error) {
	if s.fail {
		return "", errors.New("ai down")
	}
	return "stub hint", nil
}

func (s *stubAI) Feedback(_ context.Context, _ *model.Question, _ string, _ bool) (string, error) {
	if s.fail {
		return "", errors.New("ai down")
	}
	return "stub feedback", nil
}

func (s *stubAI) Analysis(_ context.Context, _ []model.AnswerRecord, _ map[model.SOLOLevel]model.LevelPerformance) (string, error) {
	if s.fail {
		return "", errors.New("ai down")
	}
	return "stub analysis", nil
}

func (s *stubAI) GenerateQuestion(_ context.Context, topic string, level model.SOLOLevel) (*model.Question, error) {
	if s.fail {
		return nil, errors.New("ai down")
	}
	return model.NewQuestion(topic, level, "stub?", []string{"a", "b", "c", "d"}, "a", "stub")
}

type quizTestEnv struct {
	router   *gin.Engine
	attempts *stubAttempts
	ai       *stubAI
	settings *config.QuizSettings
	cookies  []*http.Cookie
}

func newQuizTestEnv(t *testing.T, questionCount int) *quizTestEnv {
	t.Helper()

	questions := make([]model.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		level := model.AllSOLOLevels[i%len(model.AllSOLOLevels)]
		q, err := model.NewQuestion(
			"Basics of Knowledge Graphs",
			level,
			fmt.Sprintf("question %d?", i+1),
			[]string{"right", "wrong 1", "wrong 2", "wrong 3"},
			"right",
			"explanation",
		)
		require.NoError(t, err)
		q.ID = uint(i + 1)
		questions = append(questions, *q)
	}

	attempts := &stubAttempts{}
	ai := &stubAI{}
	perf := service.NewPerformanceService(attempts)
	quiz := service.NewQuizService(
		service.NewMemorySessionStore(time.Hour),
		&stubQuestions{questions: questions},
		attempts,
		ai,
		perf,
	)

	settings := config.NewQuizSettings(config.QuizConfig{})
	quizCtrl := NewQuizController(quiz)
	aiCtrl := NewAIController(quiz)
	progressCtrl := NewProgressController(perf, quiz, settings)

	router := gin.New()
	group := router.Group("/")
	group.Use(middleware.SessionMiddleware())
	{
		group.GET("/", quizCtrl.Home)
		group.GET("/start_quiz", quizCtrl.StartQuiz)
		group.GET("/quiz", quizCtrl.GetQuiz)
		group.POST("/submit_answer", quizCtrl.SubmitAnswer)
		group.GET("/results", quizCtrl.Results)
		group.POST("/get_ai_hint", aiCtrl.GetHint)
		group.GET("/progress", progressCtrl.GetProgress)
	}

	return &quizTestEnv{router: router, attempts: attempts, ai: ai, settings: settings}
}

// do issues a request replaying any cookies set by earlier responses, the way
// a browser carries the session cookie across the quiz flow.
func (e *quizTestEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		e.cookies = set
	}
	return w
}

func TestGetQuizWithoutSessionRedirectsHome(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	w := env.do(t, http.MethodGet, "/quiz", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestStartQuizSetsCookieAndRedirects(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	w := env.do(t, http.MethodGet, "/start_quiz?username=alice", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/quiz", w.Header().Get("Location"))
	require.NotEmpty(t, env.cookies)
	assert.Equal(t, "solo_quiz_session", env.cookies[0].Name)
}

func TestQuizFlowHappyPath(t *testing.T) {
	env := newQuizTestEnv(t, 2)

	env.do(t, http.MethodGet, "/start_quiz?username=alice", "")

	w := env.do(t, http.MethodGet, "/quiz", "")
	require.Equal(t, http.StatusOK, w.Code)

	var quizResp struct {
		Data struct {
			Question string   `json:"question"`
			Options  []string `json:"options"`
			Index    int      `json:"index"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quizResp))
	assert.Equal(t, "question 1?", quizResp.Data.Question)
	assert.Equal(t, 0, quizResp.Data.Index)
	assert.Len(t, quizResp.Data.Options, 4)

	w = env.do(t, http.MethodPost, "/submit_answer", `{"answer":"right","question_index":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var submitResp struct {
		IsCorrect  bool   `json:"is_correct"`
		AIFeedback string `json:"ai_feedback"`
		NextURL    string `json:"next_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitResp))
	assert.True(t, submitResp.IsCorrect)
	assert.Equal(t, "stub feedback", submitResp.AIFeedback)
	assert.Equal(t, "/quiz", submitResp.NextURL)

	w = env.do(t, http.MethodPost, "/submit_answer", `{"answer":"wrong 1","question_index":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitResp))
	assert.False(t, submitResp.IsCorrect)
	assert.Equal(t, "/results", submitResp.NextURL)

	// exhausted quiz redirects to results
	w = env.do(t, http.MethodGet, "/quiz", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/results", w.Header().Get("Location"))

	w = env.do(t, http.MethodGet, "/results", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resultsResp struct {
		Data struct {
			Score          int     `json:"score"`
			TotalQuestions int     `json:"totalQuestions"`
			Percentage     float64 `json:"percentage"`
			AIAnalysis     string  `json:"aiAnalysis"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resultsResp))
	assert.Equal(t, 1, resultsResp.Data.Score)
	assert.Equal(t, 2, resultsResp.Data.TotalQuestions)
	assert.InDelta(t, 50.0, resultsResp.Data.Percentage, 0.001)
	assert.Equal(t, "stub analysis", resultsResp.Data.AIAnalysis)

	assert.Len(t, env.attempts.created, 2)
}

func TestDoubleSubmitConflicts(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	env.do(t, http.MethodGet, "/start_quiz", "")

	w := env.do(t, http.MethodPost, "/submit_answer", `{"answer":"right","question_index":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/submit_answer", `{"answer":"right","question_index":0}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, env.attempts.created, 1)
}

func TestSubmitAnswerRequiresQuestionIndex(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	env.do(t, http.MethodGet, "/start_quiz", "")

	w := env.do(t, http.MethodPost, "/submit_answer", `{"answer":"right"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAnswerWithoutSessionRedirects(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	w := env.do(t, http.MethodPost, "/submit_answer", `{"answer":"right","question_index":0}`)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGetHint(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	body := `{"question":"What is a triple?","level":"Uni-structural","topic":"RDF"}`
	w := env.do(t, http.MethodPost, "/get_ai_hint", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Hint string `json:"hint"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stub hint", resp.Data.Hint)
}

func TestGetHintFallbackOnAIFailure(t *testing.T) {
	env := newQuizTestEnv(t, 5)
	env.ai.fail = true

	body := `{"question":"What is a triple?","level":"Uni-structural","topic":"RDF"}`
	w := env.do(t, http.MethodPost, "/get_ai_hint", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Hint string `json:"hint"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, service.FallbackHint, resp.Data.Hint)
}

func TestGetHintRejectsUnknownLevel(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	body := `{"question":"q?","level":"Surface","topic":"RDF"}`
	w := env.do(t, http.MethodPost, "/get_ai_hint", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgressScopingFollowsRuntimeFlag(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	env.do(t, http.MethodGet, "/start_quiz?username=alice", "")

	// default: global aggregation
	w := env.do(t, http.MethodGet, "/progress", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", env.attempts.lastUser)

	// flag flipped at runtime: report scopes to the caller's own history
	env.settings.Set(config.QuizConfig{ProgressPerUser: true})
	w = env.do(t, http.MethodGet, "/progress", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", env.attempts.lastUser)

	// explicit query parameter still overrides
	w = env.do(t, http.MethodGet, "/progress?username=bob", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", env.attempts.lastUser)
}

func TestGetProgressAggregatesAttempts(t *testing.T) {
	env := newQuizTestEnv(t, 5)

	env.do(t, http.MethodGet, "/start_quiz?username=alice", "")
	env.do(t, http.MethodPost, "/submit_answer", `{"answer":"right","question_index":0}`)
	env.do(t, http.MethodPost, "/submit_answer", `{"answer":"wrong 1","question_index":1}`)

	w := env.do(t, http.MethodGet, "/progress", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			TotalAttempts    int                               `json:"totalAttempts"`
			TopicPerformance map[string]model.LevelPerformance `json:"topicPerformance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.TotalAttempts)
	assert.Equal(t, 1, resp.Data.TopicPerformance["Basics of Knowledge Graphs"].Correct)
}
