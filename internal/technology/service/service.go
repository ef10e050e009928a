package service

import (
	"context"
	"errors"

	"digitaldivide/internal/household"
	"digitaldivide/internal/technology"
	"digitaldivide/internal/technology/metrics"
	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
	"digitaldivide/pkg/platform/sentinel"
	"digitaldivide/pkg/requestcontext"
)

// Households is the slice of the household module this service needs.
type Households interface {
	FindByID(ctx context.Context, id domain.HouseholdID) (*household.Household, error)
}

// Service owns the technology access write path and the on-demand adoption
// score. Unlike the household and person scores, the adoption score is never
// persisted; Score always computes it from the stored raw fields.
type Service struct {
	store      technology.Store
	households Households
	metrics    *metrics.Metrics
}

// New constructs the technology service.
func New(store technology.Store, households Households, m *metrics.Metrics) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "technology store is required")
	}
	if households == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "household lookup is required")
	}
	return &Service{store: store, households: households, metrics: m}, nil
}

// Attach validates and saves the household's technology access record. A
// record without an ID gets one minted here; the one-record-per-household
// constraint is enforced by the store's household key.
func (s *Service) Attach(ctx context.Context, a *technology.Access) error {
	if a == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "technology access record is required")
	}
	if a.ID.IsZero() {
		a.ID = domain.NewTechnologyAccessID()
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if _, err := s.households.FindByID(ctx, a.HouseholdID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeInvalidInput, "household does not exist: "+a.HouseholdID.String())
		}
		return dErrors.Wrap(dErrors.CodeInternal, "check household", err)
	}

	now := requestcontext.Now(ctx)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	if err := s.store.Upsert(ctx, a); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "save technology access", err)
	}
	return nil
}

// Get returns the household's technology access record.
func (s *Service) Get(ctx context.Context, id domain.HouseholdID) (*technology.Access, error) {
	a, err := s.store.FindByHousehold(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "technology access not found for household: "+id.String())
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "get technology access", err)
	}
	return a, nil
}

// Score computes the adoption score for the household's current record.
func (s *Service) Score(ctx context.Context, id domain.HouseholdID) (float64, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	score := a.AdoptionScore()
	s.metrics.RecordScore(score)
	return score, nil
}

// Detach removes the household's technology access record.
func (s *Service) Detach(ctx context.Context, id domain.HouseholdID) error {
	if err := s.store.DeleteByHousehold(ctx, id); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "delete technology access", err)
	}
	return nil
}
