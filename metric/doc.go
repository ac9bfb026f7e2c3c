// Package metric provides Prometheus instrumentation for the noid
// registry and serialization core.
//
// Metrics holds the collector set: registration and dispatch counters
// labeled by outcome, a gauge of registered factories, and counters plus
// duration histograms for ToJSONLD/FromJSONLD calls. MetricsRegistry owns
// a private prometheus.Registry pre-loaded with the core collectors and Go
// runtime collectors, so embedding applications can expose it on their own
// /metrics endpoint without collector name collisions.
//
// Instrumentation is optional everywhere: the registry and the jsonld
// serializer/parser accept a *Metrics and treat nil as "no recording".
package metric
