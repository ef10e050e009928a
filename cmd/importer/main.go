// The importer loads survey CSV exports into a record store, computing the
// household digital access index and person digital literacy score on the
// way in. While a run is in progress a small ops listener serves liveness,
// readiness and Prometheus metrics.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"digitaldivide/internal/education"
	educationservice "digitaldivide/internal/education/service"
	"digitaldivide/internal/household"
	householdmetrics "digitaldivide/internal/household/metrics"
	householdservice "digitaldivide/internal/household/service"
	"digitaldivide/internal/ingest"
	ingestmetrics "digitaldivide/internal/ingest/metrics"
	"digitaldivide/internal/ops"
	"digitaldivide/internal/person"
	personmetrics "digitaldivide/internal/person/metrics"
	personservice "digitaldivide/internal/person/service"
	"digitaldivide/internal/platform/config"
	"digitaldivide/internal/platform/httpserver"
	"digitaldivide/internal/platform/logger"
	"digitaldivide/internal/storage/sqlite"
	"digitaldivide/internal/technology"
	technologymetrics "digitaldivide/internal/technology/metrics"
	technologyservice "digitaldivide/internal/technology/service"
	"digitaldivide/pkg/requestcontext"
)

// stores bundles the per-entity stores of the selected backend, plus a
// readiness probe and a closer for connection-backed backends.
type stores struct {
	households household.Store
	persons    person.Store
	technology technology.Store
	education  education.Store
	ready      ops.ReadyCheck
	close      func() error
}

func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = requestcontext.WithRunID(ctx, uuid.NewString())

	if err := run(ctx, cfg, log); err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Importer, log *slog.Logger) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	if st.close != nil {
		defer func() {
			if cerr := st.close(); cerr != nil {
				log.Warn("closing store", "error", cerr)
			}
		}()
	}

	householdSvc, err := householdservice.New(st.households, st.persons, st.technology, st.education, householdmetrics.New(), log)
	if err != nil {
		return err
	}
	personSvc, err := personservice.New(st.persons, st.households, st.education, personmetrics.New(), log)
	if err != nil {
		return err
	}
	technologySvc, err := technologyservice.New(st.technology, st.households, technologymetrics.New())
	if err != nil {
		return err
	}
	educationSvc, err := educationservice.New(st.education, st.persons)
	if err != nil {
		return err
	}

	runner, err := ingest.NewRunner(householdSvc, personSvc, technologySvc, educationSvc,
		cfg.IngestWorkers, ingestmetrics.New(), log)
	if err != nil {
		return err
	}

	var srv *http.Server
	if cfg.OpsAddr != "" {
		srv = httpserver.New(cfg.OpsAddr, ops.NewRouter(st.ready))
		go func() {
			log.Info("ops listener starting", "addr", cfg.OpsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("ops listener error", "error", err)
			}
		}()
	}

	summary, err := runner.Run(ctx, cfg.DataDir)
	if err != nil {
		return err
	}
	log.Info("import complete",
		"households", summary.Households.Imported,
		"persons", summary.Persons.Imported,
		"technology", summary.Technology.Imported,
		"education", summary.Education.Imported,
		"rejected", summary.TotalRejected(),
	)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("ops listener shutdown", "error", err)
		}
	}
	return nil
}

func openStores(ctx context.Context, cfg config.Importer) (*stores, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return &stores{
			households: household.NewInMemoryStore(),
			persons:    person.NewInMemoryStore(),
			technology: technology.NewInMemoryStore(),
			education:  education.NewInMemoryStore(),
		}, nil

	case config.StoreSQLite:
		st, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := st.EnsureSchema(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return &stores{
			households: st.Households,
			persons:    st.Persons,
			technology: st.Technology,
			education:  st.Education,
			ready:      st.Ping,
			close:      st.Close,
		}, nil

	default: // config.StorePostgres, enforced by config.FromEnv
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			households: household.NewPostgres(db),
			persons:    person.NewPostgres(db),
			technology: technology.NewPostgres(db),
			education:  education.NewPostgres(db),
			ready:      db.Ping,
			close:      db.Close,
		}, nil
	}
}
