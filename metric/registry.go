package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/c360/noid/errors"
)

// MetricsRegistry owns a private prometheus registry pre-loaded with the
// core collectors and Go runtime collectors. Embedding applications add
// their own collectors through RegisterCollector and expose the registry
// on their /metrics endpoint.
type MetricsRegistry struct {
	prom  *prometheus.Registry
	core  *Metrics
	named map[string]prometheus.Collector
	mu    sync.Mutex
}

// NewMetricsRegistry creates a registry with the core noid collectors and
// Go runtime collectors registered.
func NewMetricsRegistry() *MetricsRegistry {
	r := &MetricsRegistry{
		prom:  prometheus.NewRegistry(),
		core:  NewMetrics(),
		named: make(map[string]prometheus.Collector),
	}
	r.prom.MustRegister(r.core.Collectors()...)
	r.prom.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// PrometheusRegistry returns the underlying prometheus registry for
// exposition.
func (r *MetricsRegistry) PrometheusRegistry() *prometheus.Registry {
	return r.prom
}

// CoreMetrics returns the core noid metrics.
func (r *MetricsRegistry) CoreMetrics() *Metrics {
	return r.core
}

// RegisterCollector registers an application-supplied collector under a
// name so it can be unregistered later. Duplicate names and prometheus
// registration conflicts are rejected.
func (r *MetricsRegistry) RegisterCollector(name string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.named[name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered", name),
			"MetricsRegistry", "RegisterCollector", "duplicate metric registration")
	}

	if err := r.prom.Register(collector); err != nil {
		var dup prometheus.AlreadyRegisteredError
		if stderrors.As(err, &dup) {
			return errors.WrapInvalid(err, "MetricsRegistry", "RegisterCollector",
				fmt.Sprintf("prometheus conflict for metric %s", name))
		}
		return errors.WrapFatal(err, "MetricsRegistry", "RegisterCollector",
			"collector registration")
	}

	r.named[name] = collector
	return nil
}

// Unregister removes a named collector. Returns false when the name is
// unknown or prometheus refuses the removal.
func (r *MetricsRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	collector, exists := r.named[name]
	if !exists {
		return false
	}
	if !r.prom.Unregister(collector) {
		return false
	}
	delete(r.named, name)
	return true
}
