package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the household module.
type Metrics struct {
	// Saves by province
	Saves *prometheus.CounterVec

	// Distribution of computed digital access indexes
	AccessIndex prometheus.Histogram
}

// New creates a Metrics instance with all household metrics registered.
func New() *Metrics {
	return &Metrics{
		Saves: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "divide_household_saves_total",
			Help: "Total household saves by province",
		}, []string{"province"}),

		AccessIndex: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "divide_household_digital_access_index",
			Help:    "Distribution of digital access index values computed at save time",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}
}

// RecordSave records one saved household and its computed index.
func (m *Metrics) RecordSave(province string, index float64) {
	if m != nil {
		m.Saves.WithLabelValues(province).Inc()
		m.AccessIndex.Observe(index)
	}
}
