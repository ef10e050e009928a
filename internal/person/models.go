package person

import (
	"time"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

// Person is an individual within a surveyed household.
//
// Invariants:
//   - ID and HouseholdID are set before first save; the household must exist
//   - Age is in [0, 120]
//   - InternetUsageHours is in [0, 24]
//   - AverageAcademicScore, when present, is in [0, 100]
//   - DigitalLiteracyScore is in [0, 1] and is recomputed on every save; it
//     is never written directly by callers
type Person struct {
	ID                       domain.PersonID       `json:"id"`
	HouseholdID              domain.HouseholdID    `json:"household_id"`
	Age                      int                   `json:"age"`
	Gender                   domain.Gender         `json:"gender"`
	EducationLevel           domain.EducationLevel `json:"education_level"`
	CurrentlyStudying        bool                  `json:"currently_studying"`
	SchoolType               domain.SchoolType     `json:"school_type"`
	HasOwnDevice             bool                  `json:"has_own_device"`
	DeviceType               string                `json:"device_type,omitempty"`
	InternetUsageHours       float64               `json:"internet_usage_hours"`
	UsesInternetForEducation bool                  `json:"uses_internet_for_education"`
	AverageAcademicScore     *float64              `json:"average_academic_score,omitempty"`
	DigitalLiteracyScore     float64               `json:"digital_literacy_score"`
	CreatedAt                time.Time             `json:"created_at"`
	UpdatedAt                time.Time             `json:"updated_at"`
}

// Digital literacy weights: device ownership 30%, usage intensity 40%,
// educational use 30%. Usage saturates at 8 hours per day.
const (
	weightOwnDevice = 0.3
	weightUsage     = 0.4
	weightEduUse    = 0.3

	usageSaturationHours = 8.0
)

// ComputeDigitalLiteracyScore derives the person's digital literacy score
// from its current field values. The result is in [0, 1] by construction.
func (p *Person) ComputeDigitalLiteracyScore() float64 {
	deviceScore := 0.0
	if p.HasOwnDevice {
		deviceScore = weightOwnDevice
	}

	usageScore := min(p.InternetUsageHours/usageSaturationHours, 1.0) * weightUsage

	eduScore := 0.0
	if p.UsesInternetForEducation {
		eduScore = weightEduUse
	}

	return deviceScore + usageScore + eduScore
}

// IsStudent reports whether the person is currently enrolled somewhere.
func (p *Person) IsStudent() bool {
	return p.CurrentlyStudying && p.SchoolType != domain.SchoolTypeNone
}

// Validate checks the invariants required before a person may be saved.
func (p *Person) Validate() error {
	if p.ID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	if p.HouseholdID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "household id is required")
	}
	if p.Age < 0 || p.Age > 120 {
		return dErrors.New(dErrors.CodeInvariantViolation, "age must be between 0 and 120")
	}
	if !p.Gender.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid gender: "+p.Gender.String())
	}
	if !p.EducationLevel.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid education level: "+p.EducationLevel.String())
	}
	if !p.SchoolType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid school type: "+p.SchoolType.String())
	}
	if p.InternetUsageHours < 0 || p.InternetUsageHours > 24 {
		return dErrors.New(dErrors.CodeInvariantViolation, "internet usage hours must be between 0 and 24")
	}
	if p.AverageAcademicScore != nil && (*p.AverageAcademicScore < 0 || *p.AverageAcademicScore > 100) {
		return dErrors.New(dErrors.CodeInvariantViolation, "average academic score must be between 0 and 100")
	}
	return nil
}
