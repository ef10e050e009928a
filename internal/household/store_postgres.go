package household

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// PostgresStore persists households in PostgreSQL.
// Pure I/O: derived-score computation and cascades belong to the service.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed household store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const householdColumns = `household_id, province, municipality, area_type, household_size,
	monthly_income, has_electricity, has_internet, internet_type,
	number_of_computers, number_of_smartphones, digital_access_index,
	created_at, updated_at`

func (s *PostgresStore) Upsert(ctx context.Context, h *Household) error {
	query := `
		INSERT INTO households (` + householdColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (household_id) DO UPDATE SET
			province = EXCLUDED.province,
			municipality = EXCLUDED.municipality,
			area_type = EXCLUDED.area_type,
			household_size = EXCLUDED.household_size,
			monthly_income = EXCLUDED.monthly_income,
			has_electricity = EXCLUDED.has_electricity,
			has_internet = EXCLUDED.has_internet,
			internet_type = EXCLUDED.internet_type,
			number_of_computers = EXCLUDED.number_of_computers,
			number_of_smartphones = EXCLUDED.number_of_smartphones,
			digital_access_index = EXCLUDED.digital_access_index,
			updated_at = EXCLUDED.updated_at
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

func (s *PostgresStore) FindByID(ctx context.Context, id domain.HouseholdID) (*Household, error) {
	query := `SELECT ` + householdColumns + ` FROM households WHERE household_id = $1`
	h, err := scanHousehold(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find household: %w", err)
	}
	return h, nil
}

func (s *PostgresStore) ListByProvince(ctx context.Context, p domain.Province) ([]*Household, error) {
	query := `SELECT ` + householdColumns + ` FROM households WHERE province = $1 ORDER BY municipality`
	rows, err := s.db.QueryContext(ctx, query, p.String())
	if err != nil {
		return nil, fmt.Errorf("list households by province: %w", err)
	}
	defer rows.Close()

	var out []*Household
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

func (s *PostgresStore) Delete(ctx context.Context, id domain.HouseholdID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM households WHERE household_id = $1`, id.String())
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

type householdRow interface {
	Scan(dest ...any) error
}

func scanHousehold(row householdRow) (*Household, error) {
	var h Household
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
