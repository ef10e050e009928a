package person

import (
	"context"
	"sort"
	"sync"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// InMemoryStore keeps persons in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	persons map[domain.PersonID]Person
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{persons: make(map[domain.PersonID]Person)}
}

func (s *InMemoryStore) Upsert(_ context.Context, p *Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons[p.ID] = *p
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.PersonID) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.persons[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	rec := p
	return &rec, nil
}

func (s *InMemoryStore) ListByHousehold(_ context.Context, id domain.HouseholdID) ([]*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Person
	for _, p := range s.persons {
		if p.HouseholdID == id {
			rec := p
			out = append(out, &rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out, nil
}

func (s *InMemoryStore) ListIDsByHousehold(_ context.Context, id domain.HouseholdID) ([]domain.PersonID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.PersonID
	for _, p := range s.persons {
		if p.HouseholdID == id {
			out = append(out, p.ID)
		}
	}
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id domain.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.persons, id)
	return nil
}

func (s *InMemoryStore) DeleteByHousehold(_ context.Context, id domain.HouseholdID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for pid, p := range s.persons {
		if p.HouseholdID == id {
			delete(s.persons, pid)
		}
	}
	return nil
}
