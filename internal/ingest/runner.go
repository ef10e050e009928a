// Package ingest loads survey exports from CSV files into the record stores.
// A run is ordered by referential dependency: households first, then persons
// and technology access in parallel, then education records. Bad rows are
// rejected individually; a run fails only on file-level problems.
package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"digitaldivide/internal/education"
	"digitaldivide/internal/household"
	"digitaldivide/internal/ingest/metrics"
	"digitaldivide/internal/person"
	"digitaldivide/internal/technology"
	dErrors "digitaldivide/pkg/domain-errors"
	"digitaldivide/pkg/requestcontext"
)

// File names a run looks for inside the data directory. Only the household
// file is required; the others are skipped when absent.
const (
	HouseholdsFile = "households.csv"
	PersonsFile    = "persons.csv"
	TechnologyFile = "technology.csv"
	EducationFile  = "education.csv"
)

// Savers are the write paths of the record services. The services themselves
// satisfy these directly.
type (
	HouseholdSaver interface {
		Save(ctx context.Context, h *household.Household) error
	}
	PersonSaver interface {
		Save(ctx context.Context, p *person.Person) error
	}
	TechnologySaver interface {
		Attach(ctx context.Context, a *technology.Access) error
	}
	EducationSaver interface {
		Attach(ctx context.Context, r *education.Record) error
	}
)

// Runner executes import runs against the record services.
type Runner struct {
	households HouseholdSaver
	persons    PersonSaver
	technology TechnologySaver
	education  EducationSaver
	workers    int
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewRunner(
	households HouseholdSaver,
	persons PersonSaver,
	technology TechnologySaver,
	education EducationSaver,
	workers int,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*Runner, error) {
	if households == nil || persons == nil || technology == nil || education == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "all record savers are required")
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		households: households,
		persons:    persons,
		technology: technology,
		education:  education,
		workers:    workers,
		metrics:    m,
		logger:     logger,
	}, nil
}

// FileResult reports what happened to one export file.
type FileResult struct {
	Imported int
	Rejected int
	Skipped  bool
}

// Summary reports what one import run did, per record kind.
type Summary struct {
	Households FileResult
	Persons    FileResult
	Technology FileResult
	Education  FileResult
}

// Run imports every survey file found in dir. Persons and technology access
// both depend only on households, so those two files load concurrently once
// the household pass completes.
func (r *Runner) Run(ctx context.Context, dir string) (*Summary, error) {
	start := time.Now()
	log := r.logger
	if id := requestcontext.RunID(ctx); id != "" {
		log = log.With("run_id", id)
	}
	var summary Summary

	var err error
	summary.Households, err = r.importFile(ctx, filepath.Join(dir, HouseholdsFile), "household", false,
		func(ctx context.Context, f fields) error {
			h, buildErr := buildHousehold(f)
			if buildErr != nil {
				return buildErr
			}
			return r.households.Save(ctx, h)
		})
	if err != nil {
		return &summary, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var gerr error
		summary.Persons, gerr = r.importFile(gctx, filepath.Join(dir, PersonsFile), "person", true,
			func(ctx context.Context, f fields) error {
				p, buildErr := buildPerson(f)
				if buildErr != nil {
					return buildErr
				}
				return r.persons.Save(ctx, p)
			})
		return gerr
	})
	g.Go(func() error {
		var gerr error
		summary.Technology, gerr = r.importFile(gctx, filepath.Join(dir, TechnologyFile), "technology", true,
			func(ctx context.Context, f fields) error {
				a, buildErr := buildTechnologyAccess(f)
				if buildErr != nil {
					return buildErr
				}
				return r.technology.Attach(ctx, a)
			})
		return gerr
	})
	if err := g.Wait(); err != nil {
		return &summary, err
	}

	summary.Education, err = r.importFile(ctx, filepath.Join(dir, EducationFile), "education", true,
		func(ctx context.Context, f fields) error {
			rec, buildErr := buildEducationRecord(f)
			if buildErr != nil {
				return buildErr
			}
			return r.education.Attach(ctx, rec)
		})
	if err != nil {
		return &summary, err
	}

	elapsed := time.Since(start)
	r.metrics.ObserveRunDuration(elapsed.Seconds())
	log.InfoContext(ctx, "import run finished",
		"dir", dir,
		"elapsed", elapsed,
		"households", summary.Households.Imported,
		"persons", summary.Persons.Imported,
		"technology", summary.Technology.Imported,
		"education", summary.Education.Imported,
		"rejected", summary.TotalRejected(),
	)
	return &summary, nil
}

// TotalRejected sums rejected rows across all files.
func (s *Summary) TotalRejected() int {
	return s.Households.Rejected + s.Persons.Rejected + s.Technology.Rejected + s.Education.Rejected
}

// importFile loads one CSV file, fanning row saves out over the worker pool.
// Row failures are logged and counted, never fatal; save errors from distinct
// rows do not cancel each other.
func (r *Runner) importFile(
	ctx context.Context,
	path, kind string,
	optional bool,
	save func(context.Context, fields) error,
) (FileResult, error) {
	if optional {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			r.logger.InfoContext(ctx, "no export file, skipping", "kind", kind, "path", path)
			return FileResult{Skipped: true}, nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	var imported, rejected atomic.Int64
	_, _, parseErrs, err := forEachRow(path, func(f fields) error {
		g.Go(func() error {
			if saveErr := save(gctx, f); saveErr != nil {
				r.logger.WarnContext(gctx, "row rejected", "kind", kind, "error", saveErr)
				r.metrics.RecordRejected(kind)
				rejected.Add(1)
				return nil
			}
			r.metrics.RecordImported(kind)
			imported.Add(1)
			return nil
		})
		return nil
	})
	if waitErr := g.Wait(); waitErr != nil && err == nil {
		err = waitErr
	}
	for _, parseErr := range parseErrs {
		r.logger.WarnContext(ctx, "row rejected", "kind", kind, "error", parseErr)
		r.metrics.RecordRejected(kind)
		rejected.Add(1)
	}

	result := FileResult{
		Imported: int(imported.Load()),
		Rejected: int(rejected.Load()),
	}
	if err != nil {
		return result, dErrors.Wrap(dErrors.CodeInternal, "import "+kind+" records", err)
	}
	return result, nil
}
