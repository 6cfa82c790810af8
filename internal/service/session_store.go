package service

import (
	"context"
	"sync"
	"time"

	"solo_quiz_backend/internal/model"
	"solo_quiz_backend/internal/util"
)

// SessionStore maps opaque session identifiers to quiz session state. The quiz
// flow owns the lifecycle: Put on start, Get/Put per answer, Delete never in the
// normal flow (expiry handles abandonment).
type SessionStore interface {
	Get(ctx context.Context, id string) (*model.QuizSession, error)
	Put(ctx context.Context, id string, s *model.QuizSession) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session  *model.QuizSession
	expireAt time.Time
}

// MemorySessionStore is the default in-process backend. A janitor goroutine
// sweeps expired entries once a minute. Get and Put exchange deep copies, the
// same snapshot semantics the redis backend gets from its JSON round-trip, so
// concurrent readers never observe a submission mutating the session.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	store := &MemorySessionStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			store.mu.Lock()
			for id, e := range store.entries {
				if now.After(e.expireAt) {
					delete(store.entries, id)
				}
			}
			store.mu.Unlock()
		}
	}()

	return store
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*model.QuizSession, error) {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok || time.Now().After(e.expireAt) {
		return nil, util.ErrNoActiveSession
	}
	return e.session.Clone(), nil
}

func (m *MemorySessionStore) Put(_ context.Context, id string, s *model.QuizSession) error {
	s.LastSeen = time.Now()
	m.mu.Lock()
	m.entries[id] = &memoryEntry{session: s.Clone(), expireAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}
