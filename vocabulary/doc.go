// Package vocabulary provides IRI and namespace primitives shared by the
// noid registry and serialization core.
//
// # Namespaces
//
// A namespace is the prefix of an IRI up to and including its final path
// separator ('/' or '#'). NamespaceOf and LocalName split an IRI into the
// two halves used throughout the system:
//
//	vocabulary.NamespaceOf("https://ex.org/schemas/widget") // "https://ex.org/schemas/"
//	vocabulary.LocalName("https://ex.org/schemas/widget")   // "widget"
//
// # Standards
//
// standards.go declares the W3C namespaces and XSD datatype IRIs that the
// normalize package keys literal coercion on. keywords.go declares the
// JSON-LD 1.1 keywords the serializer and parser recognize.
//
// This package has no dependencies and its functions are pure; it is safe
// for concurrent use.
package vocabulary
