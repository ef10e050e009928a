package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the technology module.
type Metrics struct {
	// Distribution of on-demand adoption scores
	AdoptionScore prometheus.Histogram
}

// New creates a Metrics instance with all technology metrics registered.
func New() *Metrics {
	return &Metrics{
		AdoptionScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "divide_technology_adoption_score",
			Help:    "Distribution of technology adoption scores computed on demand",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		}),
	}
}

// RecordScore records one on-demand score computation.
func (m *Metrics) RecordScore(score float64) {
	if m != nil {
		m.AdoptionScore.Observe(score)
	}
}
