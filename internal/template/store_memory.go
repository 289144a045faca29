package template

import (
	"context"
	"sync"

	"rfpforge/pkg/sentinel"
)

// Store is the template persistence port.
type Store interface {
	Save(ctx context.Context, tpl *Template) error
	FindByID(ctx context.Context, id string) (*Template, error)
}

// InMemoryStore keeps templates for the process lifetime.
type InMemoryStore struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{templates: make(map[string]*Template)}
}

func (s *InMemoryStore) Save(_ context.Context, tpl *Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *tpl
	s.templates[tpl.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *tpl
	return &copied, nil
}
