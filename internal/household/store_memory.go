package household

import (
	"context"
	"sort"
	"sync"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// InMemoryStore keeps households in process memory. Used by unit tests and
// importer dry runs.
type InMemoryStore struct {
	mu         sync.RWMutex
	households map[domain.HouseholdID]Household
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{households: make(map[domain.HouseholdID]Household)}
}

func (s *InMemoryStore) Upsert(_ context.Context, h *Household) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.households[h.ID] = *h
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.HouseholdID) (*Household, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.households[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	rec := h
	return &rec, nil
}

func (s *InMemoryStore) ListByProvince(_ context.Context, p domain.Province) ([]*Household, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Household
	for _, h := range s.households {
		if h.Province == p {
			rec := h
			out = append(out, &rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Municipality < out[j].Municipality })
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id domain.HouseholdID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.households[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.households, id)
	return nil
}
