// Package config provides YAML-loadable configuration for the noid
// serialization core.
//
// Config covers the settings an embedding application tunes: the base IRI
// and processing mode for the external JSON-LD processor, context and
// indentation behavior for the serializer, an optional default namespace
// for registration contexts, and whether Prometheus instrumentation is
// wired in.
//
//	cfg, err := config.Load("noid.yaml")
//	if err != nil {
//	    // handle error
//	}
//	serializer, parser, metrics := cfg.Build(registry.Global())
//
// A config file only names the fields it changes; everything else keeps
// the DefaultConfig values.
package config
