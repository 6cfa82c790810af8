package service

import (
	"solo_quiz_backend/internal/model"
)

// AttemptSource is the slice of the attempt repository the aggregator reads.
type AttemptSource interface {
	ListWithQuestions(username string) ([]model.AttemptWithQuestion, error)
}

type PerformanceService struct {
	attempts AttemptSource
}

func NewPerformanceService(attempts AttemptSource) *PerformanceService {
	return &PerformanceService{attempts: attempts}
}

// LevelBreakdown computes per-SOLO-level performance for one session's answer
// history. Every canonical level is present in the result; levels with no
// answers carry an all-zero triple.
func (s *PerformanceService) LevelBreakdown(answers []model.AnswerRecord) map[model.SOLOLevel]model.LevelPerformance {
	perf := make(map[model.SOLOLevel]model.LevelPerformance, len(model.AllSOLOLevels))
	for _, level := range model.AllSOLOLevels {
		perf[level] = model.LevelPerformance{}
	}

	for _, a := range answers {
		p := perf[a.Level]
		p.Total++
		if a.IsCorrect {
			p.Correct++
		}
		perf[a.Level] = p
	}

	for level, p := range perf {
		if p.Total > 0 {
			p.Percentage = float64(p.Correct) / float64(p.Total) * 100
			perf[level] = p
		}
	}

	return perf
}

// ProgressMetrics aggregates durable attempts by topic and by level. Pure over
// its input; an empty input yields an empty report.
func (s *PerformanceService) ProgressMetrics(attempts []model.AttemptWithQuestion) *model.ProgressReport {
	report := &model.ProgressReport{
		TopicPerformance: make(map[string]model.LevelPerformance),
		LevelPerformance: make(map[model.SOLOLevel]model.LevelPerformance),
		TotalAttempts:    len(attempts),
	}

	for _, a := range attempts {
		tp := report.TopicPerformance[a.Topic]
		lp := report.LevelPerformance[a.Level]
		tp.Total++
		lp.Total++
		if a.IsCorrect {
			tp.Correct++
			lp.Correct++
		}
		report.TopicPerformance[a.Topic] = tp
		report.LevelPerformance[a.Level] = lp
	}

	for topic, p := range report.TopicPerformance {
		p.Percentage = float64(p.Correct) / float64(p.Total) * 100
		report.TopicPerformance[topic] = p
	}
	for level, p := range report.LevelPerformance {
		p.Percentage = float64(p.Correct) / float64(p.Total) * 100
		report.LevelPerformance[level] = p
	}

	return report
}

// ProgressReport loads persisted attempts and aggregates them. An empty
// username aggregates every participant's history.
func (s *PerformanceService) ProgressReport(username string) (*model.ProgressReport, error) {
	attempts, err := s.attempts.ListWithQuestions(username)
	if err != nil {
		return nil, err
	}
	return s.ProgressMetrics(attempts), nil
}
