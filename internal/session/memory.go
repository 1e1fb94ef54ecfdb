package session

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu     sync.RWMutex
	states map[int64]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[int64]State)}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[userID]
	return st, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, userID int64, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = st
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
	return nil
}
