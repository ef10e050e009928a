// Package sqlite backs the survey stores with a single SQLite file, the
// format used by offline field-collection devices. One Store owns the
// connection; the typed sub-stores satisfy the per-module Store interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store bundles the per-entity sub-stores over one SQLite database.
type Store struct {
	db *sql.DB

	Households *HouseholdStore
	Persons    *PersonStore
	Technology *TechnologyStore
	Education  *EducationStore
}

// Open opens (or creates) the SQLite database at path. Foreign keys are
// enabled so the schema's ON DELETE CASCADE constraints are enforced.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	s := &Store{db: db}
	s.Households = &HouseholdStore{db: db}
	s.Persons = &PersonStore{db: db}
	s.Technology = &TechnologyStore{db: db}
	s.Education = &EducationStore{db: db}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is still reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

const schema = `
CREATE TABLE IF NOT EXISTS households (
	household_id TEXT PRIMARY KEY,
	province TEXT NOT NULL,
	municipality TEXT NOT NULL,
	area_type TEXT NOT NULL,
	household_size INTEGER NOT NULL CHECK (household_size >= 1),
	monthly_income REAL,
	has_electricity BOOLEAN NOT NULL DEFAULT 0,
	has_internet BOOLEAN NOT NULL DEFAULT 0,
	internet_type TEXT NOT NULL DEFAULT 'NONE',
	number_of_computers INTEGER NOT NULL DEFAULT 0,
	number_of_smartphones INTEGER NOT NULL DEFAULT 0,
	digital_access_index REAL NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_households_province ON households (province, area_type);

CREATE TABLE IF NOT EXISTS persons (
	person_id TEXT PRIMARY KEY,
	household_id TEXT NOT NULL REFERENCES households (household_id) ON DELETE CASCADE,
	age INTEGER NOT NULL CHECK (age BETWEEN 0 AND 120),
	gender TEXT NOT NULL,
	education_level TEXT NOT NULL,
	currently_studying BOOLEAN NOT NULL DEFAULT 0,
	school_type TEXT NOT NULL DEFAULT 'NONE',
	has_own_device BOOLEAN NOT NULL DEFAULT 0,
	device_type TEXT,
	internet_usage_hours REAL NOT NULL DEFAULT 0,
	uses_internet_for_education BOOLEAN NOT NULL DEFAULT 0,
	average_academic_score REAL,
	digital_literacy_score REAL NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_persons_household ON persons (household_id);

CREATE TABLE IF NOT EXISTS technology_access (
	id TEXT PRIMARY KEY,
	household_id TEXT NOT NULL UNIQUE REFERENCES households (household_id) ON DELETE CASCADE,
	has_internet BOOLEAN NOT NULL DEFAULT 0,
	connection_type TEXT NOT NULL DEFAULT 'none',
	internet_speed_mbps REAL,
	num_smartphones INTEGER NOT NULL DEFAULT 0,
	num_computers INTEGER NOT NULL DEFAULT 0,
	num_tablets INTEGER NOT NULL DEFAULT 0,
	has_smart_tv BOOLEAN NOT NULL DEFAULT 0,
	has_smart_speaker BOOLEAN NOT NULL DEFAULT 0,
	has_smart_thermostat BOOLEAN NOT NULL DEFAULT 0,
	has_gaming_console BOOLEAN NOT NULL DEFAULT 0,
	has_streaming_service BOOLEAN NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS education (
	id TEXT PRIMARY KEY,
	person_id TEXT NOT NULL UNIQUE REFERENCES persons (person_id) ON DELETE CASCADE,
	stage TEXT NOT NULL DEFAULT 'none',
	is_currently_enrolled BOOLEAN NOT NULL DEFAULT 0,
	school_name TEXT,
	institution_type TEXT,
	grade_point_average REAL,
	years_of_education INTEGER NOT NULL DEFAULT 0,
	has_special_education BOOLEAN NOT NULL DEFAULT 0,
	primary_language TEXT NOT NULL DEFAULT 'English',
	is_bilingual BOOLEAN NOT NULL DEFAULT 0,
	receives_financial_aid BOOLEAN NOT NULL DEFAULT 0,
	scholarship_amount REAL NOT NULL DEFAULT 0,
	has_access_to_computer BOOLEAN NOT NULL DEFAULT 0,
	participates_in_remote_learning BOOLEAN NOT NULL DEFAULT 0,
	participates_in_extracurricular BOOLEAN NOT NULL DEFAULT 0,
	extracurricular_activities TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// EnsureSchema creates the survey tables when they do not exist yet. Field
// devices start from an empty file, so the store bootstraps its own schema.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure sqlite schema: %w", err)
	}
	return nil
}
