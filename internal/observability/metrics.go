package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "climate_report"

// Metrics holds the Prometheus counters, histograms, and gauges for the report service.
type Metrics struct {
	// Environment and solution lookups.
	SnapshotsGenerated  prometheus.Counter
	InvalidCoordinates  prometheus.Counter
	SolutionLookups     prometheus.Counter
	UnknownProblemTypes prometheus.Counter

	// Image analysis.
	Analyses         *prometheus.CounterVec // labels: outcome={success,error,cancelled}
	AnalysisDuration prometheus.Histogram

	// Report submission and dispatch.
	ReportsSubmitted  prometheus.Counter
	ReportsPublished  prometheus.Counter
	PublishErrors     prometheus.Counter
	DispatcherRunning prometheus.Gauge
	BatchSize         prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		SnapshotsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_generated_total",
			Help:      "Environmental snapshots generated.",
		}),
		InvalidCoordinates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_coordinates_total",
			Help:      "Snapshot requests rejected for non-finite coordinates.",
		}),
		SolutionLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solution_lookups_total",
			Help:      "Solution catalog lookups.",
		}),
		UnknownProblemTypes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_problem_types_total",
			Help:      "Problem identifiers skipped during solution lookup.",
		}),
		Analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Image analyses by outcome.",
		}, []string{"outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of an image analysis run.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 2.5, 5, 10},
		}),
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_submitted_total",
			Help:      "Reports accepted and stored.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Reports delivered to the report sink.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Failed batch deliveries to the report sink.",
		}),
		DispatcherRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dispatcher_running",
			Help:      "1 when the report dispatcher is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of reports per dispatched batch.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
	}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SnapshotsGenerated,
		m.InvalidCoordinates,
		m.SolutionLookups,
		m.UnknownProblemTypes,
		m.Analyses,
		m.AnalysisDuration,
		m.ReportsSubmitted,
		m.ReportsPublished,
		m.PublishErrors,
		m.DispatcherRunning,
		m.BatchSize,
	}
}
