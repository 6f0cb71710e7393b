package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sauna-configurator-api/internal/domain"
)

// ErrSessionNotFound is returned for unknown or expired sessions
var ErrSessionNotFound = errors.New("selection session not found")

// SessionStore persists selection sessions with a sliding expiry
type SessionStore struct {
	store Store
	ttl   time.Duration
}

// NewSessionStore creates a session store
func NewSessionStore(store Store, ttl time.Duration) *SessionStore {
	return &SessionStore{store: store, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

// Get loads a session
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.SelectionSession, error) {
	raw, err := s.store.Get(ctx, sessionKey(id))
	if errors.Is(err, ErrMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session domain.SelectionSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	if session.Selections == nil {
		session.Selections = domain.Selections{}
	}
	return &session, nil
}

// Save writes a session and refreshes its expiry
func (s *SessionStore) Save(ctx context.Context, session *domain.SelectionSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	return s.store.Set(ctx, sessionKey(session.ID), raw, s.ttl)
}

// Delete removes a session
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, sessionKey(id))
}
