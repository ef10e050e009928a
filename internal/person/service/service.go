package service

import (
	"context"
	"errors"
	"log/slog"

	"digitaldivide/internal/household"
	"digitaldivide/internal/person"
	"digitaldivide/internal/person/metrics"
	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
	"digitaldivide/pkg/platform/sentinel"
	"digitaldivide/pkg/requestcontext"
)

// Households is the slice of the household module this service needs.
// household.Store satisfies it directly.
type Households interface {
	FindByID(ctx context.Context, id domain.HouseholdID) (*household.Household, error)
}

// EducationRecords is the slice of the education module the delete cascade
// needs.
type EducationRecords interface {
	DeleteByPerson(ctx context.Context, id domain.PersonID) error
}

// Service owns the person write path. Every save recomputes the digital
// literacy score before the record reaches the store.
type Service struct {
	store      person.Store
	households Households
	education  EducationRecords
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// New constructs the person service. Store and household lookup are required:
// a person record is never valid without its owning household. The education
// collaborator may be nil when that module is not wired.
func New(store person.Store, households Households, education EducationRecords, m *metrics.Metrics, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "person store is required")
	}
	if households == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "household lookup is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, households: households, education: education, metrics: m, logger: logger}, nil
}

// Save validates the person, confirms the owning household exists, recomputes
// the digital literacy score, and commits the record. The recompute step is
// unconditional: a caller-supplied DigitalLiteracyScore is always overwritten.
func (s *Service) Save(ctx context.Context, p *person.Person) error {
	if p == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "person is required")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.households.FindByID(ctx, p.HouseholdID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeInvalidInput, "household does not exist: "+p.HouseholdID.String())
		}
		return dErrors.Wrap(dErrors.CodeInternal, "check household", err)
	}

	now := requestcontext.Now(ctx)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.DigitalLiteracyScore = p.ComputeDigitalLiteracyScore()

	if err := s.store.Upsert(ctx, p); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "save person", err)
	}
	s.metrics.RecordSave(p.DigitalLiteracyScore)
	return nil
}

// Get returns the stored person record.
func (s *Service) Get(ctx context.Context, id domain.PersonID) (*person.Person, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "person not found: "+id.String())
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "get person", err)
	}
	return p, nil
}

// ListByHousehold returns the members of a household ordered by age.
func (s *Service) ListByHousehold(ctx context.Context, id domain.HouseholdID) ([]*person.Person, error) {
	out, err := s.store.ListByHousehold(ctx, id)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list persons", err)
	}
	return out, nil
}

// Delete removes a single person record and its education record. The leaf
// record goes first so a failure cannot orphan it.
func (s *Service) Delete(ctx context.Context, id domain.PersonID) error {
	if s.education != nil {
		if err := s.education.DeleteByPerson(ctx, id); err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "cascade education record", err)
		}
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "person not found: "+id.String())
		}
		return dErrors.Wrap(dErrors.CodeInternal, "delete person", err)
	}
	return nil
}

// HasAdequateDigitalAccess reports whether the person owns a device, their
// household currently has internet, and they actually use it. The household
// is read live on every call: a change to the household's connectivity is
// visible here immediately, without re-saving the person.
func (s *Service) HasAdequateDigitalAccess(ctx context.Context, id domain.PersonID) (bool, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	h, err := s.households.FindByID(ctx, p.HouseholdID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, dErrors.New(dErrors.CodeNotFound, "household not found: "+p.HouseholdID.String())
		}
		return false, dErrors.Wrap(dErrors.CodeInternal, "get household", err)
	}
	adequate := p.HasOwnDevice && h.HasInternet && p.InternetUsageHours > 0
	s.metrics.RecordAccessCheck(adequate)
	return adequate, nil
}
