package service

import (
	"errors"
	"testing"
	"time"

	"solo_quiz_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttemptSource struct {
	attempts []model.AttemptWithQuestion
	err      error
	lastUser string
}

func (f *fakeAttemptSource) ListWithQuestions(username string) ([]model.AttemptWithQuestion, error) {
	f.lastUser = username
	return f.attempts, f.err
}

func TestLevelBreakdownCoversAllLevels(t *testing.T) {
	svc := NewPerformanceService(nil)

	perf := svc.LevelBreakdown(nil)
	require.Len(t, perf, 5)
	for _, level := range model.AllSOLOLevels {
		assert.Equal(t, model.LevelPerformance{}, perf[level])
	}
}

func TestLevelBreakdownCounts(t *testing.T) {
	svc := NewPerformanceService(nil)
	answers := []model.AnswerRecord{
		{Level: model.PreStructural, IsCorrect: true},
		{Level: model.PreStructural, IsCorrect: false},
		{Level: model.Relational, IsCorrect: true},
	}

	perf := svc.LevelBreakdown(answers)
	assert.Equal(t, model.LevelPerformance{Correct: 1, Total: 2, Percentage: 50}, perf[model.PreStructural])
	assert.Equal(t, model.LevelPerformance{Correct: 1, Total: 1, Percentage: 100}, perf[model.Relational])
	assert.Equal(t, model.LevelPerformance{}, perf[model.ExtendedAbstract])
}

func TestLevelBreakdownIsIdempotent(t *testing.T) {
	svc := NewPerformanceService(nil)
	answers := []model.AnswerRecord{
		{Level: model.MultiStructural, IsCorrect: true},
		{Level: model.MultiStructural, IsCorrect: true},
	}

	first := svc.LevelBreakdown(answers)
	second := svc.LevelBreakdown(answers)
	assert.Equal(t, first, second)
}

func TestProgressMetricsEmpty(t *testing.T) {
	svc := NewPerformanceService(nil)

	report := svc.ProgressMetrics(nil)
	assert.Equal(t, 0, report.TotalAttempts)
	assert.Empty(t, report.TopicPerformance)
	assert.Empty(t, report.LevelPerformance)
}

func TestProgressMetricsAggregatesByTopicAndLevel(t *testing.T) {
	svc := NewPerformanceService(nil)
	now := time.Now()
	attempts := []model.AttemptWithQuestion{
		{Username: "alice", IsCorrect: true, Level: model.PreStructural, Topic: "Basics of Knowledge Graphs", Timestamp: now},
		{Username: "alice", IsCorrect: false, Level: model.UniStructural, Topic: "Basics of Knowledge Graphs", Timestamp: now},
		{Username: "bob", IsCorrect: true, Level: model.UniStructural, Topic: "RDF and Triples", Timestamp: now},
		{Username: "bob", IsCorrect: true, Level: model.UniStructural, Topic: "RDF and Triples", Timestamp: now},
	}

	report := svc.ProgressMetrics(attempts)
	assert.Equal(t, 4, report.TotalAttempts)

	assert.Equal(t, model.LevelPerformance{Correct: 1, Total: 2, Percentage: 50}, report.TopicPerformance["Basics of Knowledge Graphs"])
	assert.Equal(t, model.LevelPerformance{Correct: 2, Total: 2, Percentage: 100}, report.TopicPerformance["RDF and Triples"])

	assert.Equal(t, model.LevelPerformance{Correct: 1, Total: 1, Percentage: 100}, report.LevelPerformance[model.PreStructural])
	assert.Equal(t, model.LevelPerformance{Correct: 2, Total: 3}, model.LevelPerformance{
		Correct: report.LevelPerformance[model.UniStructural].Correct,
		Total:   report.LevelPerformance[model.UniStructural].Total,
	})
	assert.InDelta(t, 66.666, report.LevelPerformance[model.UniStructural].Percentage, 0.01)
}

func TestProgressReportScopesByUsername(t *testing.T) {
	source := &fakeAttemptSource{attempts: []model.AttemptWithQuestion{
		{Username: "alice", IsCorrect: true, Level: model.PreStructural, Topic: "Basics of Knowledge Graphs"},
	}}
	svc := NewPerformanceService(source)

	report, err := svc.ProgressReport("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", source.lastUser)
	assert.Equal(t, 1, report.TotalAttempts)
}

func TestProgressReportPropagatesError(t *testing.T) {
	source := &fakeAttemptSource{err: errors.New("db down")}
	svc := NewPerformanceService(source)

	_, err := svc.ProgressReport("")
	assert.Error(t, err)
}
