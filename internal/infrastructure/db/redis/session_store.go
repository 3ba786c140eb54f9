package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

const (
	sessionPrefix     = "session:"
	defaultSessionTTL = 24 * time.Hour
)

// SessionStore persists sessions in Redis as JSON under session:<id>.
// Clearing the key server-side revokes the session regardless of the cookie
// the browser still holds.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore with the given TTL; every write
// restarts the clock.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Read returns the stored session, or (nil, nil) when none exists or the
// stored payload does not decode into a usable session.
func (s *SessionStore) Read(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}
	return DecodeSession(raw), nil
}

// Write persists the session, replacing any previous value.
func (s *SessionStore) Write(ctx context.Context, id string, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

// Clear removes the session. Clearing an absent session is a no-op.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

// DecodeSession turns a stored payload back into a session. A payload that
// fails to parse, or parses into an incomplete session, yields nil: a
// corrupted cache entry means "no session", never an error.
func DecodeSession(raw []byte) *domain.Session {
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil
	}
	if !session.Valid() {
		return nil
	}
	return &session
}

func sessionKey(id string) string {
	return sessionPrefix + id
}
