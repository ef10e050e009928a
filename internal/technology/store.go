package technology

import (
	"context"

	"digitaldivide/pkg/domain"
)

// Store persists technology access records, keyed one-to-one by household.
type Store interface {
	// Upsert creates or fully replaces the household's record.
	Upsert(ctx context.Context, a *Access) error

	// FindByHousehold returns sentinel.ErrNotFound when no record exists.
	FindByHousehold(ctx context.Context, id domain.HouseholdID) (*Access, error)

	// DeleteByHousehold removes the household's record. Deleting zero rows
	// is not an error.
	DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error
}
