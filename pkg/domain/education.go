package domain

import dErrors "digitaldivide/pkg/domain-errors"

// EducationStage is the education record's own level classification. It is
// finer grained than the person questionnaire's EducationLevel and the two
// enumerations are maintained independently.
type EducationStage string

const (
	StageNone       EducationStage = "none"
	StagePrimary    EducationStage = "primary"
	StageSecondary  EducationStage = "secondary"
	StageHighSchool EducationStage = "high_school"
	StageVocational EducationStage = "vocational"
	StageAssociates EducationStage = "associates"
	StageBachelors  EducationStage = "bachelors"
	StageMasters    EducationStage = "masters"
	StageDoctorate  EducationStage = "doctorate"
	StageOther      EducationStage = "other"
)

var validEducationStages = map[EducationStage]bool{
	StageNone:       true,
	StagePrimary:    true,
	StageSecondary:  true,
	StageHighSchool: true,
	StageVocational: true,
	StageAssociates: true,
	StageBachelors:  true,
	StageMasters:    true,
	StageDoctorate:  true,
	StageOther:      true,
}

// ParseEducationStage constructs an EducationStage from external input.
// Empty input maps to StageNone.
func ParseEducationStage(s string) (EducationStage, error) {
	if s == "" {
		return StageNone, nil
	}
	st := EducationStage(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid education stage: "+s)
	}
	return st, nil
}

func (s EducationStage) IsValid() bool {
	return validEducationStages[s]
}

func (s EducationStage) String() string {
	return string(s)
}

// InstitutionType classifies the school named on an education record.
type InstitutionType string

const (
	InstitutionPublic     InstitutionType = "public"
	InstitutionPrivate    InstitutionType = "private"
	InstitutionCharter    InstitutionType = "charter"
	InstitutionHomeschool InstitutionType = "homeschool"
	InstitutionOther      InstitutionType = "other"
)

var validInstitutionTypes = map[InstitutionType]bool{
	InstitutionPublic:     true,
	InstitutionPrivate:    true,
	InstitutionCharter:    true,
	InstitutionHomeschool: true,
	InstitutionOther:      true,
}

// ParseInstitutionType constructs an InstitutionType from external input.
// The field is optional on the instrument, so empty input is allowed through
// as the zero value.
func ParseInstitutionType(s string) (InstitutionType, error) {
	if s == "" {
		return "", nil
	}
	t := InstitutionType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid institution type: "+s)
	}
	return t, nil
}

func (t InstitutionType) IsValid() bool {
	return validInstitutionTypes[t]
}

func (t InstitutionType) String() string {
	return string(t)
}
