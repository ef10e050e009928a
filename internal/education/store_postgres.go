package education

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// PostgresStore persists education records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed education store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const recordColumns = `id, person_id, stage, is_currently_enrolled, school_name, institution_type,
	grade_point_average, years_of_education, has_special_education,
	primary_language, is_bilingual, receives_financial_aid, scholarship_amount,
	has_access_to_computer, participates_in_remote_learning,
	participates_in_extracurricular, extracurricular_activities,
	created_at, updated_at`

func (s *PostgresStore) Upsert(ctx context.Context, r *Record) error {
	query := `
		INSERT INTO education (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (person_id) DO UPDATE SET
			stage = EXCLUDED.stage,
			is_currently_enrolled = EXCLUDED.is_currently_enrolled,
			school_name = EXCLUDED.school_name,
			institution_type = EXCLUDED.institution_type,
			grade_point_average = EXCLUDED.grade_point_average,
			years_of_education = EXCLUDED.years_of_education,
			has_special_education = EXCLUDED.has_special_education,
			primary_language = EXCLUDED.primary_language,
			is_bilingual = EXCLUDED.is_bilingual,
			receives_financial_aid = EXCLUDED.receives_financial_aid,
			scholarship_amount = EXCLUDED.scholarship_amount,
			has_access_to_computer = EXCLUDED.has_access_to_computer,
			participates_in_remote_learning = EXCLUDED.participates_in_remote_learning,
			participates_in_extracurricular = EXCLUDED.participates_in_extracurricular,
			extracurricular_activities = EXCLUDED.extracurricular_activities,
			updated_at = EXCLUDED.updated_at
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

func (s *PostgresStore) FindByPerson(ctx context.Context, id domain.PersonID) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM education WHERE person_id = $1`
	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find education record: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) DeleteByPerson(ctx context.Context, id domain.PersonID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM education WHERE person_id = $1`, id.String()); err != nil {
		return fmt.Errorf("delete education record: %w", err)
	}
	return nil
}

type recordRow interface {
	Scan(dest ...any) error
}

func scanRecord(row recordRow) (*Record, error) {
	var r Record
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

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
