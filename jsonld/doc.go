// Package jsonld converts registered domain objects to and from compact
// JSON-LD documents.
//
// # Overview
//
// The package composes three collaborators:
//
//   - the registry, which maps IRIs to factories and constructed objects
//     back to IRIs
//   - the normalize package, which unwraps the expanded literal form the
//     external processor produces
//   - an external JSON-LD 1.1 Processor (json-gold by default), used as a
//     black box for expansion, compaction and flattening
//
// Serializer.ToJSONLD walks the data being serialized, harvests the
// namespaces of every registered object, seeds a fresh Abbreviator from
// them, and emits prefix:localName keys plus a matching @context.
// Parser.FromJSONLD runs the document through the external expander,
// normalizes each property value, and dispatches it through the registry,
// degrading unknown vocabulary to plain data instead of failing the
// whole document.
//
// # Abbreviation
//
// An Abbreviator lives for exactly one call. Prefix assignment within an
// instance is collision-free and, when seeded through ForNamespaces,
// deterministic for a fixed namespace set. Candidates are derived from
// the namespace itself (path segment and host truncations), with an MD5
// suffix fallback when a document's namespaces exhaust the readable
// candidates, and the full namespace IRI as the terminal, always-unique
// fallback. That terminal case produces a technically invalid compact
// key; the serializer logs a warning when it emits one.
//
// # Round trip
//
//	reg := registry.New()
//	registry.MustRegisterIn(reg.Namespace("https://ex.org/schemas/"), "widget", newWidget)
//
//	ser := jsonld.NewSerializer(reg)
//	doc, _ := ser.ToJSONLD(w)
//	// {"@context": {"sche": "https://ex.org/schemas/"}, "sche:widget": {...}}
//
//	par := jsonld.NewParser(reg)
//	back, _ := par.FromJSONLD(doc)
//	// back["sche:widget"] is a widget again
package jsonld
