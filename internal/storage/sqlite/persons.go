package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"digitaldivide/internal/person"
	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// PersonStore implements person.Store over SQLite.
type PersonStore struct {
	db *sql.DB
}

const personColumns = `person_id, household_id, age, gender, education_level,
	currently_studying, school_type, has_own_device, device_type,
	internet_usage_hours, uses_internet_for_education, average_academic_score,
	digital_literacy_score, created_at, updated_at`

func (s *PersonStore) Upsert(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (person_id) DO UPDATE SET
			household_id = excluded.household_id,
			age = excluded.age,
			gender = excluded.gender,
			education_level = excluded.education_level,
			currently_studying = excluded.currently_studying,
			school_type = excluded.school_type,
			has_own_device = excluded.has_own_device,
			device_type = excluded.device_type,
			internet_usage_hours = excluded.internet_usage_hours,
			uses_internet_for_education = excluded.uses_internet_for_education,
			average_academic_score = excluded.average_academic_score,
			digital_literacy_score = excluded.digital_literacy_score,
			updated_at = excluded.updated_at
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

func (s *PersonStore) FindByID(ctx context.Context, id domain.PersonID) (*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE person_id = ?`
	p, err := scanPerson(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return p, nil
}

func (s *PersonStore) ListByHousehold(ctx context.Context, id domain.HouseholdID) ([]*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE household_id = ? ORDER BY age`
	rows, err := s.db.QueryContext(ctx, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("list persons by household: %w", err)
	}
	defer rows.Close()

	var out []*person.Person
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

func (s *PersonStore) ListIDsByHousehold(ctx context.Context, id domain.HouseholdID) ([]domain.PersonID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT person_id FROM persons WHERE household_id = ?`, id.String())
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

func (s *PersonStore) Delete(ctx context.Context, id domain.PersonID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE person_id = ?`, id.String())
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

func (s *PersonStore) DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE household_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete persons by household: %w", err)
	}
	return nil
}

func scanPerson(row interface{ Scan(dest ...any) error }) (*person.Person, error) {
	var p person.Person
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
