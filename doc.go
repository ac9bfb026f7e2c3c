// Package noid provides registry-driven JSON-LD serialization for Go types.
//
// The module maps IRIs to factory functions and uses those mappings to
// round-trip Go values through JSON-LD documents. It has four layers:
//
//   - registry: an IRI-to-factory Registry with typed registration,
//     reverse lookup from live objects to IRIs, and introspection.
//   - jsonld: serialization (ToJSONLD) and parsing (FromJSONLD) built on
//     the registry, with automatic namespace abbreviation when building
//     @context blocks and graceful degradation for unknown terms.
//   - normalize: conversion of expanded JSON-LD value objects back into
//     plain Go scalars, honouring XSD datatype coercions.
//   - vocabulary: IRI helpers and well-known namespace constants shared
//     by the layers above.
//
// Supporting packages follow the same conventions as the rest of the
// module: errors carries the classified error taxonomy, metric exposes
// Prometheus collectors for registry and serialization activity, and
// config loads YAML configuration and wires the pieces together.
//
// # Quick start
//
//	reg := registry.New()
//	schemas := reg.Namespace("https://ex.org/schemas/")
//	registry.MustRegisterIn(schemas, "widget", newWidget)
//
//	serializer := jsonld.NewSerializer(reg)
//	doc, err := serializer.ToJSONLD(widget{Scale: 2.5})
//	if err != nil {
//		return err
//	}
//
//	parser := jsonld.NewParser(reg)
//	parsed, err := parser.FromJSONLD(doc)
//
// Serialization never fails on unregistered values and parsing never
// fails on unknown terms; both degrade to plain data and log the
// degradation, so a document written by one process can always be read
// by another even when their registries diverge.
package noid
