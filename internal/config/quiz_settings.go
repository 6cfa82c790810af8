package config

import "sync"

// QuizSettings holds the quiz flags that config hot reload can change while
// request handlers are reading them.
type QuizSettings struct {
	mu  sync.RWMutex
	cfg QuizConfig
}

func NewQuizSettings(cfg QuizConfig) *QuizSettings {
	return &QuizSettings{cfg: cfg}
}

func (s *QuizSettings) Set(cfg QuizConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *QuizSettings) ProgressPerUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.ProgressPerUser
}
