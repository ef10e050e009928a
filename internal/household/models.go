package household

import (
	"time"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

// Household is the aggregate root for a surveyed household.
//
// Invariants:
//   - ID, Province, AreaType and Municipality are set before first save
//   - HouseholdSize >= 1
//   - Device counts are non-negative
//   - DigitalAccessIndex is in [0, 1] and is recomputed on every save; it is
//     never written directly by callers
//
// # Cascade Invariant
//
// Deleting a household deletes its persons, their education records, and its
// technology access record. This is enforced at the service layer (Delete)
// rather than left to individual stores, so the memory backend behaves the
// same as the SQL backends with their ON DELETE CASCADE constraints.
type Household struct {
	ID                  domain.HouseholdID  `json:"id"`
	Province            domain.Province     `json:"province"`
	Municipality        string              `json:"municipality"`
	AreaType            domain.AreaType     `json:"area_type"`
	HouseholdSize       int                 `json:"household_size"`
	MonthlyIncome       *float64            `json:"monthly_income,omitempty"`
	HasElectricity      bool                `json:"has_electricity"`
	HasInternet         bool                `json:"has_internet"`
	InternetType        domain.InternetType `json:"internet_type"`
	NumberOfComputers   int                 `json:"number_of_computers"`
	NumberOfSmartphones int                 `json:"number_of_smartphones"`
	DigitalAccessIndex  float64             `json:"digital_access_index"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// Digital access index weights: internet quality 40%, devices per capita 30%,
// electricity 30%.
const (
	weightInternet       = 0.4
	weightDevices        = 0.3
	weightInfrastructure = 0.3
)

// internetPoints ranks connection quality on a 0-4 scale. Types missing from
// the table score 0.
var internetPoints = map[domain.InternetType]float64{
	domain.InternetNone:      0,
	domain.InternetMobile:    2,
	domain.InternetADSL:      3,
	domain.InternetSatellite: 3,
	domain.InternetFiber:     4,
}

// ComputeDigitalAccessIndex derives the household's digital access index from
// its current field values. The result is always in [0, 1].
//
// Precondition: HouseholdSize >= 1. Validate enforces this at the write
// boundary; the computation itself does not guard against zero.
func (h *Household) ComputeDigitalAccessIndex() float64 {
	internetScore := internetPoints[h.InternetType] / 4

	devicesPerPerson := float64(h.NumberOfComputers+h.NumberOfSmartphones) / float64(h.HouseholdSize)
	deviceScore := min(devicesPerPerson, 1.0)

	infrastructureScore := 0.0
	if h.HasElectricity {
		infrastructureScore = 1.0
	}

	return internetScore*weightInternet +
		deviceScore*weightDevices +
		infrastructureScore*weightInfrastructure
}

// Validate checks the invariants required before a household may be saved.
func (h *Household) Validate() error {
	if h.ID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "household id is required")
	}
	if !h.Province.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid province: "+h.Province.String())
	}
	if h.Municipality == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "municipality is required")
	}
	if !h.AreaType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid area type: "+h.AreaType.String())
	}
	if h.HouseholdSize < 1 {
		return dErrors.New(dErrors.CodeInvariantViolation, "household size must be at least 1")
	}
	if !h.InternetType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid internet type: "+h.InternetType.String())
	}
	if h.NumberOfComputers < 0 || h.NumberOfSmartphones < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "device counts cannot be negative")
	}
	return nil
}
