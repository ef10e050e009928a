package service

import (
	"context"
	"errors"
	"log/slog"

	"digitaldivide/internal/household"
	"digitaldivide/internal/household/metrics"
	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
	"digitaldivide/pkg/platform/sentinel"
	"digitaldivide/pkg/requestcontext"
)

// Members is the slice of the person module the cascade needs.
type Members interface {
	ListIDsByHousehold(ctx context.Context, id domain.HouseholdID) ([]domain.PersonID, error)
	DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error
}

// TechnologyRecords is the slice of the technology module the cascade needs.
type TechnologyRecords interface {
	DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error
}

// EducationRecords is the slice of the education module the cascade needs.
type EducationRecords interface {
	DeleteByPerson(ctx context.Context, id domain.PersonID) error
}

// Service owns the household write path. Every save recomputes the digital
// access index before the record reaches the store; there is no way to
// persist a household through this API without recomputation.
type Service struct {
	store      household.Store
	members    Members
	technology TechnologyRecords
	education  EducationRecords
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// New constructs the household service. The store is required; cascade
// collaborators and metrics may be nil when the corresponding modules are not
// wired (e.g. score-only unit tests).
func New(store household.Store, members Members, technology TechnologyRecords, education EducationRecords, m *metrics.Metrics, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "household store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:      store,
		members:    members,
		technology: technology,
		education:  education,
		metrics:    m,
		logger:     logger,
	}, nil
}

// Save validates the household, recomputes its digital access index, and
// commits the record. The recompute step is unconditional: a caller-supplied
// DigitalAccessIndex value is always overwritten.
func (s *Service) Save(ctx context.Context, h *household.Household) error {
	if h == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "household is required")
	}
	if err := h.Validate(); err != nil {
		return err
	}

	now := requestcontext.Now(ctx)
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	h.UpdatedAt = now
	h.DigitalAccessIndex = h.ComputeDigitalAccessIndex()

	if err := s.store.Upsert(ctx, h); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "save household", err)
	}
	s.metrics.RecordSave(h.Province.String(), h.DigitalAccessIndex)
	return nil
}

// Get returns the stored household record.
func (s *Service) Get(ctx context.Context, id domain.HouseholdID) (*household.Household, error) {
	h, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "household not found: "+id.String())
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "get household", err)
	}
	return h, nil
}

// ListByProvince returns households in a province ordered by municipality.
func (s *Service) ListByProvince(ctx context.Context, p domain.Province) ([]*household.Household, error) {
	if !p.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid province: "+p.String())
	}
	out, err := s.store.ListByProvince(ctx, p)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list households", err)
	}
	return out, nil
}

// Delete removes the household and cascades to its members, their education
// records, and its technology access record. Cascade order matters: leaf
// records go first so a failure cannot orphan them.
func (s *Service) Delete(ctx context.Context, id domain.HouseholdID) error {
	if s.members != nil {
		personIDs, err := s.members.ListIDsByHousehold(ctx, id)
		if err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "list household members", err)
		}
		if s.education != nil {
			for _, pid := range personIDs {
				if err := s.education.DeleteByPerson(ctx, pid); err != nil {
					return dErrors.Wrap(dErrors.CodeInternal, "cascade education records", err)
				}
			}
		}
		if err := s.members.DeleteByHousehold(ctx, id); err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "cascade household members", err)
		}
	}
	if s.technology != nil {
		if err := s.technology.DeleteByHousehold(ctx, id); err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "cascade technology access", err)
		}
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "household not found: "+id.String())
		}
		return dErrors.Wrap(dErrors.CodeInternal, "delete household", err)
	}
	s.logger.Info("household deleted", "household_id", id.String())
	return nil
}
