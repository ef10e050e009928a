package technology

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// PostgresStore persists technology access records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed technology access store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const accessColumns = `id, household_id, has_internet, connection_type, internet_speed_mbps,
	num_smartphones, num_computers, num_tablets,
	has_smart_tv, has_smart_speaker, has_smart_thermostat,
	has_gaming_console, has_streaming_service, created_at, updated_at`

func (s *PostgresStore) Upsert(ctx context.Context, a *Access) error {
	query := `
		INSERT INTO technology_access (` + accessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (household_id) DO UPDATE SET
			has_internet = EXCLUDED.has_internet,
			connection_type = EXCLUDED.connection_type,
			internet_speed_mbps = EXCLUDED.internet_speed_mbps,
			num_smartphones = EXCLUDED.num_smartphones,
			num_computers = EXCLUDED.num_computers,
			num_tablets = EXCLUDED.num_tablets,
			has_smart_tv = EXCLUDED.has_smart_tv,
			has_smart_speaker = EXCLUDED.has_smart_speaker,
			has_smart_thermostat = EXCLUDED.has_smart_thermostat,
			has_gaming_console = EXCLUDED.has_gaming_console,
			has_streaming_service = EXCLUDED.has_streaming_service,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		a.ID.String(),
		a.HouseholdID.String(),
		a.HasInternet,
		a.ConnectionType.String(),
		nullFloat(a.InternetSpeedMbps),
		a.NumSmartphones,
		a.NumComputers,
		a.NumTablets,
		a.HasSmartTV,
		a.HasSmartSpeaker,
		a.HasSmartThermostat,
		a.HasGamingConsole,
		a.HasStreamingService,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert technology access: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByHousehold(ctx context.Context, id domain.HouseholdID) (*Access, error) {
	query := `SELECT ` + accessColumns + ` FROM technology_access WHERE household_id = $1`
	a, err := scanAccess(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find technology access: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM technology_access WHERE household_id = $1`, id.String()); err != nil {
		return fmt.Errorf("delete technology access: %w", err)
	}
	return nil
}

type accessRow interface {
	Scan(dest ...any) error
}

func scanAccess(row accessRow) (*Access, error) {
	var a Access
	var rawID, connectionType string
	var speed sql.NullFloat64
	if err := row.Scan(
		&rawID,
		&a.HouseholdID,
		&a.HasInternet,
		&connectionType,
		&speed,
		&a.NumSmartphones,
		&a.NumComputers,
		&a.NumTablets,
		&a.HasSmartTV,
		&a.HasSmartSpeaker,
		&a.HasSmartThermostat,
		&a.HasGamingConsole,
		&a.HasStreamingService,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse technology access id: %w", err)
	}
	a.ID = domain.TechnologyAccessID(parsed)
	a.ConnectionType = domain.ConnectionType(connectionType)
	if speed.Valid {
		a.InternetSpeedMbps = &speed.Float64
	}
	return &a, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
