package config

import (
	"github.com/c360/noid/jsonld"
	"github.com/c360/noid/metric"
	"github.com/c360/noid/registry"
)

// ProcessorOptions translates the config into options for the external
// JSON-LD processor.
func (c *Config) ProcessorOptions() []jsonld.ProcessorOption {
	var opts []jsonld.ProcessorOption
	if c.BaseIRI != "" {
		opts = append(opts, jsonld.WithBaseIRI(c.BaseIRI))
	}
	if c.ProcessingMode != "" {
		opts = append(opts, jsonld.WithProcessingMode(c.ProcessingMode))
	}
	return opts
}

// MarshalOptions translates the config into per-call serializer options.
func (c *Config) MarshalOptions() []jsonld.MarshalOption {
	var opts []jsonld.MarshalOption
	if !c.IncludeContext {
		opts = append(opts, jsonld.WithoutContext())
	}
	if c.Indent != "" {
		opts = append(opts, jsonld.WithIndent(c.Indent))
	}
	return opts
}

// RegistrationContext returns a registration context for the configured
// default namespace, for applications that register their vocabulary
// without naming a namespace themselves. Returns nil when the config
// carries no default namespace.
func (c *Config) RegistrationContext(reg *registry.Registry) *registry.RegistrationContext {
	if c.DefaultNamespace == "" {
		return nil
	}
	return reg.Namespace(c.DefaultNamespace)
}

// Build wires a serializer and parser around reg per the config. When
// metrics are enabled the returned MetricsRegistry exposes the collectors
// recording registry and serialization activity; otherwise it is nil.
func (c *Config) Build(reg *registry.Registry) (*jsonld.Serializer, *jsonld.Parser, *metric.MetricsRegistry) {
	var serializerOpts []jsonld.SerializerOption
	parserOpts := []jsonld.ParserOption{
		jsonld.WithProcessor(jsonld.NewProcessor(c.ProcessorOptions()...)),
	}

	var metricsRegistry *metric.MetricsRegistry
	if c.MetricsEnabled {
		metricsRegistry = metric.NewMetricsRegistry()
		core := metricsRegistry.CoreMetrics()
		reg.WithMetrics(core)
		serializerOpts = append(serializerOpts, jsonld.WithSerializerMetrics(core))
		parserOpts = append(parserOpts, jsonld.WithParserMetrics(core))
	}

	serializer := jsonld.NewSerializer(reg, serializerOpts...)
	parser := jsonld.NewParser(reg, parserOpts...)
	return serializer, parser, metricsRegistry
}
