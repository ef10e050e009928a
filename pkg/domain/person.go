package domain

import dErrors "digitaldivide/pkg/domain-errors"

// Gender as captured on the survey instrument.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

// ParseGender constructs a Gender from external input.
func ParseGender(s string) (Gender, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "gender cannot be empty")
	}
	g := Gender(s)
	if !g.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid gender: "+s)
	}
	return g, nil
}

func (g Gender) IsValid() bool {
	return validGenders[g]
}

func (g Gender) String() string {
	return string(g)
}

// EducationLevel is the highest completed level, coded per the South African
// education system.
type EducationLevel string

const (
	EducationLevelNone         EducationLevel = "NONE"
	EducationLevelPrimary      EducationLevel = "PRIM"
	EducationLevelSecondary    EducationLevel = "SECO"
	EducationLevelMatric       EducationLevel = "MATR"
	EducationLevelDiploma      EducationLevel = "DIPL"
	EducationLevelDegree       EducationLevel = "DEGR"
	EducationLevelPostgraduate EducationLevel = "POST"
)

var validEducationLevels = map[EducationLevel]bool{
	EducationLevelNone:         true,
	EducationLevelPrimary:      true,
	EducationLevelSecondary:    true,
	EducationLevelMatric:       true,
	EducationLevelDiploma:      true,
	EducationLevelDegree:       true,
	EducationLevelPostgraduate: true,
}

// ParseEducationLevel constructs an EducationLevel from external input.
func ParseEducationLevel(s string) (EducationLevel, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "education level cannot be empty")
	}
	l := EducationLevel(s)
	if !l.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid education level: "+s)
	}
	return l, nil
}

func (l EducationLevel) IsValid() bool {
	return validEducationLevels[l]
}

func (l EducationLevel) String() string {
	return string(l)
}

// SchoolType is the institution a person currently attends.
type SchoolType string

const (
	SchoolTypePublic     SchoolType = "PUB"
	SchoolTypePrivate    SchoolType = "PRI"
	SchoolTypeTVET       SchoolType = "TVET"
	SchoolTypeUniversity SchoolType = "UNI"
	SchoolTypeNone       SchoolType = "NONE"
)

var validSchoolTypes = map[SchoolType]bool{
	SchoolTypePublic:     true,
	SchoolTypePrivate:    true,
	SchoolTypeTVET:       true,
	SchoolTypeUniversity: true,
	SchoolTypeNone:       true,
}

// ParseSchoolType constructs a SchoolType from external input. Empty input
// maps to SchoolTypeNone, the questionnaire default for non-students.
func ParseSchoolType(s string) (SchoolType, error) {
	if s == "" {
		return SchoolTypeNone, nil
	}
	t := SchoolType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid school type: "+s)
	}
	return t, nil
}

func (t SchoolType) IsValid() bool {
	return validSchoolTypes[t]
}

func (t SchoolType) String() string {
	return string(t)
}
