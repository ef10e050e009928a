package service

import (
	"context"
	"errors"

	"digitaldivide/internal/education"
	"digitaldivide/internal/person"
	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
	"digitaldivide/pkg/platform/sentinel"
	"digitaldivide/pkg/requestcontext"
)

// Persons is the slice of the person module this service needs.
// person.Store satisfies it directly.
type Persons interface {
	FindByID(ctx context.Context, id domain.PersonID) (*person.Person, error)
}

// Service owns the education record write path.
type Service struct {
	store   education.Store
	persons Persons
}

// New constructs the education service.
func New(store education.Store, persons Persons) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "education store is required")
	}
	if persons == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "person lookup is required")
	}
	return &Service{store: store, persons: persons}, nil
}

// Attach validates and saves the person's education record. A record without
// an ID gets one minted here.
func (s *Service) Attach(ctx context.Context, r *education.Record) error {
	if r == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "education record is required")
	}
	if r.ID.IsZero() {
		r.ID = domain.NewEducationRecordID()
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if _, err := s.persons.FindByID(ctx, r.PersonID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeInvalidInput, "person does not exist: "+r.PersonID.String())
		}
		return dErrors.Wrap(dErrors.CodeInternal, "check person", err)
	}

	now := requestcontext.Now(ctx)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	if err := s.store.Upsert(ctx, r); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "save education record", err)
	}
	return nil
}

// Get returns the person's education record.
func (s *Service) Get(ctx context.Context, id domain.PersonID) (*education.Record, error) {
	r, err := s.store.FindByPerson(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "education record not found for person: "+id.String())
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "get education record", err)
	}
	return r, nil
}

// Detach removes the person's education record.
func (s *Service) Detach(ctx context.Context, id domain.PersonID) error {
	if err := s.store.DeleteByPerson(ctx, id); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "delete education record", err)
	}
	return nil
}
