package education

import (
	"context"

	"digitaldivide/pkg/domain"
)

// Store persists education records, keyed one-to-one by person.
type Store interface {
	// Upsert creates or fully replaces the person's record.
	Upsert(ctx context.Context, r *Record) error

	// FindByPerson returns sentinel.ErrNotFound when no record exists.
	FindByPerson(ctx context.Context, id domain.PersonID) (*Record, error)

	// DeleteByPerson removes the person's record. Deleting zero rows is not
	// an error.
	DeleteByPerson(ctx context.Context, id domain.PersonID) error
}
