package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"digitaldivide/internal/household"
	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// HouseholdStore implements household.Store over SQLite.
type HouseholdStore struct {
	db *sql.DB
}

const householdColumns = `household_id, province, municipality, area_type, household_size,
	monthly_income, has_electricity, has_internet, internet_type,
	number_of_computers, number_of_smartphones, digital_access_index,
	created_at, updated_at`

func (s *HouseholdStore) Upsert(ctx context.Context, h *household.Household) error {
	query := `
		INSERT INTO households (` + householdColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (household_id) DO UPDATE SET
			province = excluded.province,
			municipality = excluded.municipality,
			area_type = excluded.area_type,
			household_size = excluded.household_size,
			monthly_income = excluded.monthly_income,
			has_electricity = excluded.has_electricity,
			has_internet = excluded.has_internet,
			internet_type = excluded.internet_type,
			number_of_computers = excluded.number_of_computers,
			number_of_smartphones = excluded.number_of_smartphones,
			digital_access_index = excluded.digital_access_index,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		h.ID.String(),
		h.Province.String(),
		h.Municipality,
		h.AreaType.String(),
		h.HouseholdSize,
		nullFloat(h.MonthlyIncome),
		h.HasElectricity,
		h.HasInternet,
		h.InternetType.String(),
		h.NumberOfComputers,
		h.NumberOfSmartphones,
		h.DigitalAccessIndex,
		h.CreatedAt,
		h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert household: %w", err)
	}
	return nil
}

func (s *HouseholdStore) FindByID(ctx context.Context, id domain.HouseholdID) (*household.Household, error) {
	query := `SELECT ` + householdColumns + ` FROM households WHERE household_id = ?`
	h, err := scanHousehold(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find household: %w", err)
	}
	return h, nil
}

func (s *HouseholdStore) ListByProvince(ctx context.Context, p domain.Province) ([]*household.Household, error) {
	query := `SELECT ` + householdColumns + ` FROM households WHERE province = ? ORDER BY municipality`
	rows, err := s.db.QueryContext(ctx, query, p.String())
	if err != nil {
		return nil, fmt.Errorf("list households by province: %w", err)
	}
	defer rows.Close()

	var out []*household.Household
	for rows.Next() {
		h, err := scanHousehold(rows)
		if err != nil {
			return nil, fmt.Errorf("scan household row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate household rows: %w", err)
	}
	return out, nil
}

func (s *HouseholdStore) Delete(ctx context.Context, id domain.HouseholdID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM households WHERE household_id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete household: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete household rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanHousehold(row interface{ Scan(dest ...any) error }) (*household.Household, error) {
	var h household.Household
	var province, areaType, internetType string
	var income sql.NullFloat64
	if err := row.Scan(
		&h.ID,
		&province,
		&h.Municipality,
		&areaType,
		&h.HouseholdSize,
		&income,
		&h.HasElectricity,
		&h.HasInternet,
		&internetType,
		&h.NumberOfComputers,
		&h.NumberOfSmartphones,
		&h.DigitalAccessIndex,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return nil, err
	}
	h.Province = domain.Province(province)
	h.AreaType = domain.AreaType(areaType)
	h.InternetType = domain.InternetType(internetType)
	if income.Valid {
		h.MonthlyIncome = &income.Float64
	}
	return &h, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
