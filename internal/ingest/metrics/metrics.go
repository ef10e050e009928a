package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks import progress per record kind.
type Metrics struct {
	Imported *prometheus.CounterVec
	Rejected *prometheus.CounterVec
	Duration prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		Imported: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "divide_ingest_records_imported_total",
			Help: "Records imported, by record kind.",
		}, []string{"kind"}),
		Rejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "divide_ingest_records_rejected_total",
			Help: "Records rejected during import, by record kind.",
		}, []string{"kind"}),
		Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "divide_ingest_run_duration_seconds",
			Help:    "Wall-clock duration of a full import run.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
}

func (m *Metrics) RecordImported(kind string) {
	if m == nil {
		return
	}
	m.Imported.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordRejected(kind string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveRunDuration(seconds float64) {
	if m == nil {
		return
	}
	m.Duration.Observe(seconds)
}
