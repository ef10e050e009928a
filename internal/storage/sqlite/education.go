package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"digitaldivide/internal/education"
	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// EducationStore implements education.Store over SQLite.
type EducationStore struct {
	db *sql.DB
}

const recordColumns = `id, person_id, stage, is_currently_enrolled, school_name, institution_type,
	grade_point_average, years_of_education, has_special_education,
	primary_language, is_bilingual, receives_financial_aid, scholarship_amount,
	has_access_to_computer, participates_in_remote_learning,
	participates_in_extracurricular, extracurricular_activities,
	created_at, updated_at`

func (s *EducationStore) Upsert(ctx context.Context, r *education.Record) error {
	query := `
		INSERT INTO education (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (person_id) DO UPDATE SET
			stage = excluded.stage,
			is_currently_enrolled = excluded.is_currently_enrolled,
			school_name = excluded.school_name,
			institution_type = excluded.institution_type,
			grade_point_average = excluded.grade_point_average,
			years_of_education = excluded.years_of_education,
			has_special_education = excluded.has_special_education,
			primary_language = excluded.primary_language,
			is_bilingual = excluded.is_bilingual,
			receives_financial_aid = excluded.receives_financial_aid,
			scholarship_amount = excluded.scholarship_amount,
			has_access_to_computer = excluded.has_access_to_computer,
			participates_in_remote_learning = excluded.participates_in_remote_learning,
			participates_in_extracurricular = excluded.participates_in_extracurricular,
			extracurricular_activities = excluded.extracurricular_activities,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID.String(),
		r.PersonID.String(),
		r.Stage.String(),
		r.IsCurrentlyEnrolled,
		nullString(r.SchoolName),
		nullString(r.InstitutionType.String()),
		nullFloat(r.GradePointAverage),
		r.YearsOfEducation,
		r.HasSpecialEducation,
		r.PrimaryLanguage,
		r.IsBilingual,
		r.ReceivesFinancialAid,
		r.ScholarshipAmount,
		r.HasAccessToComputer,
		r.ParticipatesInRemoteLearning,
		r.ParticipatesInExtracurricular,
		nullString(r.ExtracurricularActivities),
		r.CreatedAt,
		r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert education record: %w", err)
	}
	return nil
}

func (s *EducationStore) FindByPerson(ctx context.Context, id domain.PersonID) (*education.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM education WHERE person_id = ?`
	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find education record: %w", err)
	}
	return r, nil
}

func (s *EducationStore) DeleteByPerson(ctx context.Context, id domain.PersonID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM education WHERE person_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete education record: %w", err)
	}
	return nil
}

func scanRecord(row interface{ Scan(dest ...any) error }) (*education.Record, error) {
	var r education.Record
	var rawID, stage string
	var schoolName, institutionType, extracurricular sql.NullString
	var gpa sql.NullFloat64
	if err := row.Scan(
		&rawID,
		&r.PersonID,
		&stage,
		&r.IsCurrentlyEnrolled,
		&schoolName,
		&institutionType,
		&gpa,
		&r.YearsOfEducation,
		&r.HasSpecialEducation,
		&r.PrimaryLanguage,
		&r.IsBilingual,
		&r.ReceivesFinancialAid,
		&r.ScholarshipAmount,
		&r.HasAccessToComputer,
		&r.ParticipatesInRemoteLearning,
		&r.ParticipatesInExtracurricular,
		&extracurricular,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse education record id: %w", err)
	}
	r.ID = domain.EducationRecordID(parsed)
	r.Stage = domain.EducationStage(stage)
	r.SchoolName = schoolName.String
	r.InstitutionType = domain.InstitutionType(institutionType.String)
	r.ExtracurricularActivities = extracurricular.String
	if gpa.Valid {
		r.GradePointAverage = &gpa.Float64
	}
	return &r, nil
}
