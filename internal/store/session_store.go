// Package store holds the process-held session collection. Sessions are
// kept in memory for the lifetime of the process; there is no persistence
// backend by design.
package store

import (
	"errors"
	"sync"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
)

var (
	// ErrNotFound is returned when no session has the requested id.
	ErrNotFound = errors.New("session not found")
	// ErrDuplicateID is returned when inserting an id that already exists.
	ErrDuplicateID = errors.New("session id already exists")
)

// SessionStore is an in-memory collection of call sessions keyed by id,
// listed most-recent-first. Safe for concurrent use.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.CallSession
	order    []string // ids, most recent first
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.CallSession)}
}

// Insert adds a new session at the front of the listing order.
func (s *SessionStore) Insert(session domain.CallSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; exists {
		return ErrDuplicateID
	}
	s.sessions[session.ID] = session
	s.order = append([]string{session.ID}, s.order...)
	return nil
}

// Replace overwrites the session with the given id wholesale, preserving the
// fields fixed at creation: id, date, agent profile, context, and audio URL.
// Listing order is unchanged. This is the only permitted mutation; partial
// in-place field updates do not exist.
func (s *SessionStore) Replace(id string, updated domain.CallSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	updated.ID = existing.ID
	updated.Date = existing.Date
	updated.AgentProfile = existing.AgentProfile
	updated.Context = existing.Context
	updated.AudioURL = existing.AudioURL
	s.sessions[id] = updated
	return nil
}

// Get returns the session with the given id.
func (s *SessionStore) Get(id string) (domain.CallSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.CallSession{}, ErrNotFound
	}
	return session, nil
}

// List returns all sessions, most recent first.
func (s *SessionStore) List() []domain.CallSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CallSession, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.sessions[id])
	}
	return out
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
