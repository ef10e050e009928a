package technology

import (
	"context"
	"sync"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// InMemoryStore keeps technology access records in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[domain.HouseholdID]Access
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[domain.HouseholdID]Access)}
}

func (s *InMemoryStore) Upsert(_ context.Context, a *Access) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[a.HouseholdID] = *a
	return nil
}

func (s *InMemoryStore) FindByHousehold(_ context.Context, id domain.HouseholdID) (*Access, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.records[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	rec := a
	return &rec, nil
}

func (s *InMemoryStore) DeleteByHousehold(_ context.Context, id domain.HouseholdID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
