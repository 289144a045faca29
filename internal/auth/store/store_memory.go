package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"rfpforge/internal/auth"
	"rfpforge/pkg/sentinel"
)

// InMemoryUserStore keeps users for the process lifetime.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*auth.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[uuid.UUID]*auth.User)}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id uuid.UUID) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// InMemorySessionStore keeps sessions for the process lifetime. Expired
// sessions are treated as missing on lookup.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*auth.Session
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[uuid.UUID]*auth.Session)}
}

func (s *InMemorySessionStore) Create(_ context.Context, session *auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *InMemorySessionStore) FindByID(_ context.Context, id uuid.UUID) (*auth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return nil, sentinel.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}
