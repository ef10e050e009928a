package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the person module.
type Metrics struct {
	// Saves counted without labels; person records have no low-cardinality
	// grouping field of their own.
	Saves prometheus.Counter

	// Distribution of computed digital literacy scores
	LiteracyScore prometheus.Histogram

	// Adequate-access predicate evaluations by outcome
	AccessChecks *prometheus.CounterVec
}

// New creates a Metrics instance with all person metrics registered.
func New() *Metrics {
	return &Metrics{
		Saves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "divide_person_saves_total",
			Help: "Total person saves",
		}),

		LiteracyScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "divide_person_digital_literacy_score",
			Help:    "Distribution of digital literacy scores computed at save time",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),

		AccessChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "divide_person_access_checks_total",
			Help: "Adequate digital access predicate evaluations by outcome",
		}, []string{"outcome"}), // outcome: "adequate", "inadequate"
	}
}

// RecordSave records one saved person and its computed score.
func (m *Metrics) RecordSave(score float64) {
	if m != nil {
		m.Saves.Inc()
		m.LiteracyScore.Observe(score)
	}
}

// RecordAccessCheck records one predicate evaluation.
func (m *Metrics) RecordAccessCheck(adequate bool) {
	if m == nil {
		return
	}
	outcome := "inadequate"
	if adequate {
		outcome = "adequate"
	}
	m.AccessChecks.WithLabelValues(outcome).Inc()
}
