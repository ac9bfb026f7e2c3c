package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcome labels used by Metrics.RecordDispatch.
const (
	OutcomeCreated      = "created"
	OutcomeUnknownIRI   = "unknown_iri"
	OutcomeFactoryError = "factory_error"
	OutcomeSuccess      = "success"
	OutcomeError        = "error"
	OutcomeDegraded     = "degraded"
)

// Metrics contains all core metrics for the registry and serialization
// paths (not domain-specific)
type Metrics struct {
	// Registry metrics
	RegistrationsTotal  *prometheus.CounterVec
	DispatchTotal       *prometheus.CounterVec
	RegisteredFactories prometheus.Gauge

	// Serialization metrics
	SerializeTotal    *prometheus.CounterVec
	ParseTotal        *prometheus.CounterVec
	SerializeDuration prometheus.Histogram
	ParseDuration     prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all core metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RegistrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "noid",
				Subsystem: "registry",
				Name:      "registrations_total",
				Help:      "Total number of factory registrations by outcome",
			},
			[]string{"outcome"},
		),

		DispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "noid",
				Subsystem: "registry",
				Name:      "dispatch_total",
				Help:      "Total number of Create dispatches by outcome (created, unknown_iri, factory_error)",
			},
			[]string{"outcome"},
		),

		RegisteredFactories: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "noid",
				Subsystem: "registry",
				Name:      "factories",
				Help:      "Number of currently registered factories",
			},
		),

		SerializeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "noid",
				Subsystem: "jsonld",
				Name:      "serialize_total",
				Help:      "Total number of ToJSONLD calls by outcome",
			},
			[]string{"outcome"},
		),

		ParseTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "noid",
				Subsystem: "jsonld",
				Name:      "parse_total",
				Help:      "Total number of FromJSONLD calls by outcome (success, error, degraded)",
			},
			[]string{"outcome"},
		),

		SerializeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "noid",
				Subsystem: "jsonld",
				Name:      "serialize_duration_seconds",
				Help:      "ToJSONLD duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		ParseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "noid",
				Subsystem: "jsonld",
				Name:      "parse_duration_seconds",
				Help:      "FromJSONLD duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// RecordRegistration increments the registration counter
func (c *Metrics) RecordRegistration(outcome string) {
	c.RegistrationsTotal.WithLabelValues(outcome).Inc()
}

// RecordDispatch increments the dispatch counter
func (c *Metrics) RecordDispatch(outcome string) {
	c.DispatchTotal.WithLabelValues(outcome).Inc()
}

// SetRegisteredFactories updates the registered factory gauge
func (c *Metrics) SetRegisteredFactories(count int) {
	c.RegisteredFactories.Set(float64(count))
}

// RecordSerialize increments the serialize counter and records duration
func (c *Metrics) RecordSerialize(outcome string, duration time.Duration) {
	c.SerializeTotal.WithLabelValues(outcome).Inc()
	c.SerializeDuration.Observe(duration.Seconds())
}

// RecordParse increments the parse counter and records duration
func (c *Metrics) RecordParse(outcome string, duration time.Duration) {
	c.ParseTotal.WithLabelValues(outcome).Inc()
	c.ParseDuration.Observe(duration.Seconds())
}

// Collectors returns every collector owned by this Metrics instance, in a
// stable order, for registration with a prometheus registry.
func (c *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.RegistrationsTotal,
		c.DispatchTotal,
		c.RegisteredFactories,
		c.SerializeTotal,
		c.ParseTotal,
		c.SerializeDuration,
		c.ParseDuration,
	}
}
