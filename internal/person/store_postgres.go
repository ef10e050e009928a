package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// PostgresStore persists persons in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed person store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const personColumns = `person_id, household_id, age, gender, education_level,
	currently_studying, school_type, has_own_device, device_type,
	internet_usage_hours, uses_internet_for_education, average_academic_score,
	digital_literacy_score, created_at, updated_at`

func (s *PostgresStore) Upsert(ctx context.Context, p *Person) error {
	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (person_id) DO UPDATE SET
			household_id = EXCLUDED.household_id,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			education_level = EXCLUDED.education_level,
			currently_studying = EXCLUDED.currently_studying,
			school_type = EXCLUDED.school_type,
			has_own_device = EXCLUDED.has_own_device,
			device_type = EXCLUDED.device_type,
			internet_usage_hours = EXCLUDED.internet_usage_hours,
			uses_internet_for_education = EXCLUDED.uses_internet_for_education,
			average_academic_score = EXCLUDED.average_academic_score,
			digital_literacy_score = EXCLUDED.digital_literacy_score,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID.String(),
		p.HouseholdID.String(),
		p.Age,
		p.Gender.String(),
		p.EducationLevel.String(),
		p.CurrentlyStudying,
		p.SchoolType.String(),
		p.HasOwnDevice,
		nullString(p.DeviceType),
		p.InternetUsageHours,
		p.UsesInternetForEducation,
		nullFloat(p.AverageAcademicScore),
		p.DigitalLiteracyScore,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert person: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.PersonID) (*Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE person_id = $1`
	p, err := scanPerson(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListByHousehold(ctx context.Context, id domain.HouseholdID) ([]*Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE household_id = $1 ORDER BY age`
	rows, err := s.db.QueryContext(ctx, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("list persons by household: %w", err)
	}
	defer rows.Close()

	var out []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate person rows: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) ListIDsByHousehold(ctx context.Context, id domain.HouseholdID) ([]domain.PersonID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT person_id FROM persons WHERE household_id = $1`, id.String())
	if err != nil {
		return nil, fmt.Errorf("list person ids by household: %w", err)
	}
	defer rows.Close()

	var out []domain.PersonID
	for rows.Next() {
		var pid string
		if err := rows.Scan(&pid); err != nil {
			return nil, fmt.Errorf("scan person id: %w", err)
		}
		out = append(out, domain.PersonID(pid))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate person ids: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.PersonID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE person_id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete person rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE household_id = $1`, id.String()); err != nil {
		return fmt.Errorf("delete persons by household: %w", err)
	}
	return nil
}

type personRow interface {
	Scan(dest ...any) error
}

func scanPerson(row personRow) (*Person, error) {
	var p Person
	var gender, educationLevel, schoolType string
	var deviceType sql.NullString
	var academicScore sql.NullFloat64
	if err := row.Scan(
		&p.ID,
		&p.HouseholdID,
		&p.Age,
		&gender,
		&educationLevel,
		&p.CurrentlyStudying,
		&schoolType,
		&p.HasOwnDevice,
		&deviceType,
		&p.InternetUsageHours,
		&p.UsesInternetForEducation,
		&academicScore,
		&p.DigitalLiteracyScore,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	p.EducationLevel = domain.EducationLevel(educationLevel)
	p.SchoolType = domain.SchoolType(schoolType)
	p.DeviceType = deviceType.String
	if academicScore.Valid {
		p.AverageAcademicScore = &academicScore.Float64
	}
	return &p, nil
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
