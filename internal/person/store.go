package person

import (
	"context"

	"digitaldivide/pkg/domain"
)

// Store persists persons. Implementations are pure I/O; validation, related
// record checks and derived-score computation belong to the service layer.
type Store interface {
	// Upsert creates or fully replaces the person record.
	Upsert(ctx context.Context, p *Person) error

	// FindByID returns sentinel.ErrNotFound when no record exists.
	FindByID(ctx context.Context, id domain.PersonID) (*Person, error)

	// ListByHousehold returns members of a household ordered by age.
	ListByHousehold(ctx context.Context, id domain.HouseholdID) ([]*Person, error)

	// ListIDsByHousehold returns member IDs only, for cascade bookkeeping.
	ListIDsByHousehold(ctx context.Context, id domain.HouseholdID) ([]domain.PersonID, error)

	// Delete removes a single person record.
	Delete(ctx context.Context, id domain.PersonID) error

	// DeleteByHousehold removes all members of a household. Deleting zero
	// rows is not an error.
	DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error
}
