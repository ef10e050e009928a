package household

import (
	"context"

	"digitaldivide/pkg/domain"
)

// Store persists households. Implementations are pure I/O; validation and
// derived-score computation belong to the service layer.
type Store interface {
	// Upsert creates or fully replaces the household record.
	Upsert(ctx context.Context, h *Household) error

	// FindByID returns sentinel.ErrNotFound when no record exists.
	FindByID(ctx context.Context, id domain.HouseholdID) (*Household, error)

	// ListByProvince returns households in a province ordered by municipality.
	ListByProvince(ctx context.Context, p domain.Province) ([]*Household, error)

	// Delete removes the household record only; cascading related records is
	// the service's responsibility.
	Delete(ctx context.Context, id domain.HouseholdID) error
}
