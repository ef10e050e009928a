package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "digitaldivide/pkg/domain-errors"
)

// Survey identifiers come from the field-collection instruments, not from the
// database: enumerators assign household and person codes on paper forms, so
// both are caller-supplied string keys rather than generated UUIDs.
// Companion records (technology access, education) have no survey-facing
// identity and use generated UUIDs.

// HouseholdID uniquely identifies a surveyed household.
//
// Usage: construct via ParseHouseholdID at trust boundaries; direct casting
// bypasses validation.
type HouseholdID string

// PersonID uniquely identifies a surveyed household member.
type PersonID string

// TechnologyAccessID identifies a household's technology access record.
type TechnologyAccessID uuid.UUID

// EducationRecordID identifies a person's education record.
type EducationRecordID uuid.UUID

const maxSurveyIDLength = 20

func parseSurveyID(s, label string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	if len(s) > maxSurveyIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" must be 20 characters or less")
	}
	return s, nil
}

// ParseHouseholdID constructs a HouseholdID from external input.
func ParseHouseholdID(s string) (HouseholdID, error) {
	v, err := parseSurveyID(s, "household id")
	if err != nil {
		return "", err
	}
	return HouseholdID(v), nil
}

// ParsePersonID constructs a PersonID from external input.
func ParsePersonID(s string) (PersonID, error) {
	v, err := parseSurveyID(s, "person id")
	if err != nil {
		return "", err
	}
	return PersonID(v), nil
}

func (h HouseholdID) String() string { return string(h) }
func (h HouseholdID) IsZero() bool   { return h == "" }

func (p PersonID) String() string { return string(p) }
func (p PersonID) IsZero() bool   { return p == "" }

// NewTechnologyAccessID mints a fresh record identifier.
func NewTechnologyAccessID() TechnologyAccessID {
	return TechnologyAccessID(uuid.New())
}

// NewEducationRecordID mints a fresh record identifier.
func NewEducationRecordID() EducationRecordID {
	return EducationRecordID(uuid.New())
}

func (t TechnologyAccessID) String() string { return uuid.UUID(t).String() }
func (t TechnologyAccessID) IsZero() bool   { return uuid.UUID(t) == uuid.Nil }

func (e EducationRecordID) String() string { return uuid.UUID(e).String() }
func (e EducationRecordID) IsZero() bool   { return uuid.UUID(e) == uuid.Nil }

// ParseTechnologyAccessID constructs a TechnologyAccessID from its string form.
func ParseTechnologyAccessID(s string) (TechnologyAccessID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TechnologyAccessID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid technology access id")
	}
	return TechnologyAccessID(u), nil
}

// ParseEducationRecordID constructs an EducationRecordID from its string form.
func ParseEducationRecordID(s string) (EducationRecordID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return EducationRecordID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid education record id")
	}
	return EducationRecordID(u), nil
}
