package model

import "time"

// AnswerRecord is the in-session snapshot of one submitted answer. Level, topic
// and question text are copied from the question at submission time so later
// aggregation does not depend on the catalog staying unchanged.
type AnswerRecord struct {
	QuestionID     uint      `json:"questionId"`
	SelectedOption string    `json:"selectedOption"`
	IsCorrect      bool      `json:"isCorrect"`
	Level          SOLOLevel `json:"level"`
	Topic          string    `json:"topic"`
	QuestionText   string    `json:"questionText"`
}

// QuizSession is the per-participant progression record. It lives only for the
// duration of one quiz run and is held in the session store, never in the
// database. JSON tags cover the redis store backend.
type QuizSession struct {
	Username     string         `json:"username"`
	CurrentIndex int            `json:"currentIndex"`
	Score        int            `json:"score"`
	Answers      []AnswerRecord `json:"answers"`
	StartedAt    time.Time      `json:"startedAt"`
	LastSeen     time.Time      `json:"lastSeen"`
}

// Clone returns a deep copy; the Answers backing array is never shared.
func (s *QuizSession) Clone() *QuizSession {
	c := *s
	c.Answers = append([]AnswerRecord(nil), s.Answers...)
	return &c
}

// NewQuizSession returns a fresh session: ordinal and score zeroed, history empty.
func NewQuizSession(username string) *QuizSession {
	now := time.Now()
	return &QuizSession{
		Username:  username,
		Answers:   []AnswerRecord{},
		StartedAt: now,
		LastSeen:  now,
	}
}
