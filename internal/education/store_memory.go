package education

import (
	"context"
	"sync"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// InMemoryStore keeps education records in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[domain.PersonID]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[domain.PersonID]Record)}
}

func (s *InMemoryStore) Upsert(_ context.Context, r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.PersonID] = *r
	return nil
}

func (s *InMemoryStore) FindByPerson(_ context.Context, id domain.PersonID) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	rec := r
	return &rec, nil
}

func (s *InMemoryStore) DeleteByPerson(_ context.Context, id domain.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
