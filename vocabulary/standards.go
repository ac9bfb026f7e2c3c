package vocabulary

// Standard Vocabulary IRIs
//
// These constants provide commonly used W3C and semantic web standard
// namespaces and datatype IRIs. The XSD datatype constants drive literal
// coercion in the normalize package.
//
// References:
// - XML Schema Datatypes: https://www.w3.org/TR/xmlschema11-2/
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - Schema.org: https://schema.org/

// Base namespaces for common vocabularies
const (
	// XSDNamespace is the XML Schema datatype namespace
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// RDFNamespace is the RDF concepts namespace
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// SchemaOrgNamespace is the Schema.org vocabulary namespace
	SchemaOrgNamespace = "https://schema.org/"
)

// XSD datatype IRIs recognized by literal coercion
const (
	// XSDFloat is the single-precision floating point datatype
	XSDFloat = XSDNamespace + "float"

	// XSDDouble is the double-precision floating point datatype
	XSDDouble = XSDNamespace + "double"

	// XSDDecimal is the arbitrary-precision decimal datatype
	XSDDecimal = XSDNamespace + "decimal"

	// XSDInteger is the arbitrary-size integer datatype
	XSDInteger = XSDNamespace + "integer"

	// XSDInt is the 32-bit integer datatype
	XSDInt = XSDNamespace + "int"

	// XSDLong is the 64-bit integer datatype
	XSDLong = XSDNamespace + "long"

	// XSDBoolean is the boolean datatype
	XSDBoolean = XSDNamespace + "boolean"

	// XSDString is the string datatype
	XSDString = XSDNamespace + "string"
)
