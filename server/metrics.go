package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics contains the server's Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	ReloadsTotal  *prometheus.CounterVec

	SnapshotClasses     prometheus.Gauge
	SnapshotIndividuals prometheus.Gauge
	SnapshotEntries     prometheus.Gauge
}

// NewMetrics creates and registers the server metrics on a fresh
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontolex",
				Subsystem: "queries",
				Name:      "total",
				Help:      "Total number of queries served",
			},
			[]string{"endpoint", "status"},
		),

		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ontolex",
				Subsystem: "queries",
				Name:      "duration_seconds",
				Help:      "Query handling duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		ReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontolex",
				Subsystem: "snapshot",
				Name:      "reloads_total",
				Help:      "Snapshot reload attempts by outcome",
			},
			[]string{"outcome"},
		),

		SnapshotClasses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ontolex",
			Subsystem: "snapshot",
			Name:      "classes",
			Help:      "Classes in the active snapshot",
		}),

		SnapshotIndividuals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ontolex",
			Subsystem: "snapshot",
			Name:      "individuals",
			Help:      "Individuals in the active snapshot",
		}),

		SnapshotEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ontolex",
			Subsystem: "snapshot",
			Name:      "lexical_entries",
			Help:      "Lexical entries in the active snapshot",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.QueriesTotal,
		m.QueryDuration,
		m.ReloadsTotal,
		m.SnapshotClasses,
		m.SnapshotIndividuals,
		m.SnapshotEntries,
	)
	return m
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
