package config

import (
	"github.com/caarlos0/env/v11"

	dErrors "digitaldivide/pkg/domain-errors"
)

// StoreKind selects the persistence backend for a run.
type StoreKind string

const (
	StoreMemory   StoreKind = "memory"
	StorePostgres StoreKind = "postgres"
	StoreSQLite   StoreKind = "sqlite"
)

// Importer captures configuration for the survey importer binary.
type Importer struct {
	// Store selects the backend: memory (dry runs), postgres, or sqlite.
	Store StoreKind `env:"STORE" envDefault:"postgres"`

	// DatabaseURL is the PostgreSQL DSN; required when Store is postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// SQLitePath is the field-collection database file; required when Store
	// is sqlite.
	SQLitePath string `env:"SQLITE_PATH"`

	// DataDir holds the survey CSV exports to ingest.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// OpsAddr serves /healthz and /metrics while an import runs. Empty
	// disables the listener.
	OpsAddr string `env:"OPS_ADDR" envDefault:":9090"`

	// IngestWorkers bounds concurrent record saves per file.
	IngestWorkers int `env:"INGEST_WORKERS" envDefault:"4"`
}

// FromEnv builds importer config from environment variables so main stays lean.
func FromEnv() (Importer, error) {
	var cfg Importer
	if err := env.Parse(&cfg); err != nil {
		return Importer{}, dErrors.Wrap(dErrors.CodeInvalidInput, "parse environment", err)
	}
	switch cfg.Store {
	case StoreMemory, StorePostgres, StoreSQLite:
	default:
		return Importer{}, dErrors.New(dErrors.CodeInvalidInput, "STORE must be memory, postgres, or sqlite")
	}
	if cfg.Store == StorePostgres && cfg.DatabaseURL == "" {
		return Importer{}, dErrors.New(dErrors.CodeInvalidInput, "DATABASE_URL is required for the postgres store")
	}
	if cfg.Store == StoreSQLite && cfg.SQLitePath == "" {
		return Importer{}, dErrors.New(dErrors.CodeInvalidInput, "SQLITE_PATH is required for the sqlite store")
	}
	if cfg.IngestWorkers < 1 {
		cfg.IngestWorkers = 1
	}
	return cfg, nil
}
