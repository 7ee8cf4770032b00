package solver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by a solve. All methods are
// safe on a nil *Metrics.
type Metrics struct {
	NodesSolved        prometheus.Counter
	TreatmentsApplied  *prometheus.CounterVec
	UnmatchedFunctions *prometheus.CounterVec
	SolveDuration      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil. It panics if registration fails, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodesSolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stormnet_nodes_solved_total",
			Help: "Total number of nodes solved",
		}),
		TreatmentsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stormnet_treatments_applied_total",
				Help: "Performance functions applied to links",
			},
			[]string{"flag", "pollutant"},
		),
		UnmatchedFunctions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stormnet_unmatched_functions_total",
				Help: "Treatment flags evaluated without a performance function",
			},
			[]string{"flag", "pollutant"},
		),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stormnet_solve_duration_seconds",
			Help:    "Wall time of network solves",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.NodesSolved, m.TreatmentsApplied, m.UnmatchedFunctions, m.SolveDuration)
	}

	return m
}

func (m *Metrics) nodeSolved() {
	if m != nil {
		m.NodesSolved.Inc()
	}
}

func (m *Metrics) treatment(flag, pollutant string, matched bool) {
	if m == nil {
		return
	}
	if matched {
		m.TreatmentsApplied.WithLabelValues(flag, pollutant).Inc()
	} else {
		m.UnmatchedFunctions.WithLabelValues(flag, pollutant).Inc()
	}
}

func (m *Metrics) observe(d time.Duration) {
	if m != nil {
		m.SolveDuration.Observe(d.Seconds())
	}
}
