package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"digitaldivide/internal/technology"
	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

// TechnologyStore implements technology.Store over SQLite.
type TechnologyStore struct {
	db *sql.DB
}

const accessColumns = `id, household_id, has_internet, connection_type, internet_speed_mbps,
	num_smartphones, num_computers, num_tablets,
	has_smart_tv, has_smart_speaker, has_smart_thermostat,
	has_gaming_console, has_streaming_service, created_at, updated_at`

func (s *TechnologyStore) Upsert(ctx context.Context, a *technology.Access) error {
	query := `
		INSERT INTO technology_access (` + accessColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (household_id) DO UPDATE SET
			has_internet = excluded.has_internet,
			connection_type = excluded.connection_type,
			internet_speed_mbps = excluded.internet_speed_mbps,
			num_smartphones = excluded.num_smartphones,
			num_computers = excluded.num_computers,
			num_tablets = excluded.num_tablets,
			has_smart_tv = excluded.has_smart_tv,
			has_smart_speaker = excluded.has_smart_speaker,
			has_smart_thermostat = excluded.has_smart_thermostat,
			has_gaming_console = excluded.has_gaming_console,
			has_streaming_service = excluded.has_streaming_service,
			updated_at = excluded.updated_at
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

func (s *TechnologyStore) FindByHousehold(ctx context.Context, id domain.HouseholdID) (*technology.Access, error) {
	query := `SELECT ` + accessColumns + ` FROM technology_access WHERE household_id = ?`
	a, err := scanAccess(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find technology access: %w", err)
	}
	return a, nil
}

func (s *TechnologyStore) DeleteByHousehold(ctx context.Context, id domain.HouseholdID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM technology_access WHERE household_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete technology access: %w", err)
	}
	return nil
}

func scanAccess(row interface{ Scan(dest ...any) error }) (*technology.Access, error) {
	var a technology.Access
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
