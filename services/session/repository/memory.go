package repository

import (
	"context"
	"sync"
)

// MemorySessionStore is an in-process session store used in tests and local
// runs without Redis. Semantics match SessionRepo: absent fields read as "".
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]map[string]string),
	}
}

// Get returns the stored value, or "" when the field is absent
func (s *MemorySessionStore) Get(ctx context.Context, sid, field string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[sid][field], nil
}

// Set stores a field value
func (s *MemorySessionStore) Set(ctx context.Context, sid, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[sid] == nil {
		s.sessions[sid] = make(map[string]string)
	}
	s.sessions[sid][field] = value
	return nil
}

// Delete removes the given fields
func (s *MemorySessionStore) Delete(ctx context.Context, sid string, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range fields {
		delete(s.sessions[sid], field)
	}
	return nil
}

// Clear removes all session fields
func (s *MemorySessionStore) Clear(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sid)
	return nil
}
