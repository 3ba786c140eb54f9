// Package memory provides in-process implementations of the portal's
// storage ports, used in tests and for single-node development without a
// Redis instance.
package memory

import (
	"context"
	"sync"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// SessionStore keeps sessions in a mutex-guarded map. Last write wins, same
// as the Redis store; entries never expire.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionStore creates an empty in-memory store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.Session)}
}

// Read returns a copy of the stored session, or (nil, nil) when absent.
func (s *SessionStore) Read(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok || !session.Valid() {
		return nil, nil
	}
	return cloneSession(session), nil
}

// Write stores a copy of the session so later caller mutations don't leak in.
func (s *SessionStore) Write(_ context.Context, id string, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = cloneSession(session)
	return nil
}

// Clear removes the session; clearing twice is the same as clearing once.
func (s *SessionStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func cloneSession(session *domain.Session) *domain.Session {
	if session == nil {
		return nil
	}
	clone := *session
	if session.User != nil {
		user := *session.User
		if session.User.Profile != nil {
			profile := *session.User.Profile
			user.Profile = &profile
		}
		clone.User = &user
	}
	return &clone
}
