package rfp

import (
	"context"
	"fmt"
	"sync"

	"rfpforge/pkg/sentinel"
)

// InMemoryStore keeps documents for the process lifetime. A single mutex
// guards the per-year sequence counters and the document map together, so
// number allocation is serialized and gapless.
type InMemoryStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
	order     []string
	sequences map[int]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		documents: make(map[string]*Document),
		sequences: make(map[int]int),
	}
}

func (s *InMemoryStore) Create(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	year := doc.CreatedAt.Year()
	s.sequences[year]++
	doc.Number = fmt.Sprintf("RFP-%d-%03d", year, s.sequences[year])

	copied := *doc
	s.documents[doc.ID] = &copied
	s.order = append(s.order, doc.ID)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, ownerID string) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []*Document
	for _, id := range s.order {
		doc := s.documents[id]
		if doc.CreatedBy == ownerID {
			copied := *doc
			docs = append(docs, &copied)
		}
	}
	return docs, nil
}
