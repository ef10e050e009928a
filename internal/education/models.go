package education

import (
	"time"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

// Record is a person's education record, a one-to-one companion to the person
// entity. Its helpers are plain lookups; there is no derived score persisted
// here.
type Record struct {
	ID                            domain.EducationRecordID `json:"id"`
	PersonID                      domain.PersonID          `json:"person_id"`
	Stage                         domain.EducationStage    `json:"stage"`
	IsCurrentlyEnrolled           bool                     `json:"is_currently_enrolled"`
	SchoolName                    string                   `json:"school_name,omitempty"`
	InstitutionType               domain.InstitutionType   `json:"institution_type,omitempty"`
	GradePointAverage             *float64                 `json:"grade_point_average,omitempty"`
	YearsOfEducation              int                      `json:"years_of_education"`
	HasSpecialEducation           bool                     `json:"has_special_education"`
	PrimaryLanguage               string                   `json:"primary_language"`
	IsBilingual                   bool                     `json:"is_bilingual"`
	ReceivesFinancialAid          bool                     `json:"receives_financial_aid"`
	ScholarshipAmount             float64                  `json:"scholarship_amount"`
	HasAccessToComputer           bool                     `json:"has_access_to_computer"`
	ParticipatesInRemoteLearning  bool                     `json:"participates_in_remote_learning"`
	ParticipatesInExtracurricular bool                     `json:"participates_in_extracurricular"`
	ExtracurricularActivities     string                   `json:"extracurricular_activities,omitempty"`
	CreatedAt                     time.Time                `json:"created_at"`
	UpdatedAt                     time.Time                `json:"updated_at"`
}

// stageScores ranks education stages 0-8. Stages missing from the table
// (including "other") score 0.
var stageScores = map[domain.EducationStage]int{
	domain.StageNone:       0,
	domain.StagePrimary:    1,
	domain.StageSecondary:  2,
	domain.StageHighSchool: 3,
	domain.StageVocational: 4,
	domain.StageAssociates: 5,
	domain.StageBachelors:  6,
	domain.StageMasters:    7,
	domain.StageDoctorate:  8,
}

// StageScore returns the 0-8 rank of the record's education stage.
func (r *Record) StageScore() int {
	return stageScores[r.Stage]
}

// IsHigherEducation reports whether the stage is at associate level or above.
func (r *Record) IsHigherEducation() bool {
	switch r.Stage {
	case domain.StageAssociates, domain.StageBachelors, domain.StageMasters, domain.StageDoctorate:
		return true
	}
	return false
}

// AcademicStatus returns a one-line summary for reports.
func (r *Record) AcademicStatus() string {
	status := "Level: " + r.Stage.String()
	if r.IsCurrentlyEnrolled {
		status += " (Currently Enrolled)"
	}
	if r.SchoolName != "" {
		status += " at " + r.SchoolName
	}
	return status
}

// Validate checks the invariants required before a record may be saved.
func (r *Record) Validate() error {
	if r.ID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "education record id is required")
	}
	if r.PersonID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	if !r.Stage.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid education stage: "+r.Stage.String())
	}
	if r.InstitutionType != "" && !r.InstitutionType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid institution type: "+r.InstitutionType.String())
	}
	if r.YearsOfEducation < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "years of education cannot be negative")
	}
	if r.ScholarshipAmount < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "scholarship amount cannot be negative")
	}
	return nil
}
