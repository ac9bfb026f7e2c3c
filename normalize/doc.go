// Package normalize converts expanded JSON-LD values back to plain Go
// values.
//
// JSON-LD expansion (per the JSON-LD 1.1 expansion algorithm) arrays every
// scalar and wraps it as {"@value": v} with an optional "@type" datatype
// IRI. Normalize reverses that transformation:
//
//	normalize.Normalize([]any{map[string]any{"@value": "linear"}})
//	// "linear"
//
//	normalize.Normalize([]any{
//	    map[string]any{"@value": 10.0},
//	    map[string]any{"@value": 20.0},
//	})
//	// []any{10.0, 20.0}
//
// Literals carrying an XSD datatype on @type are coerced: float, double
// and decimal parse to float64; integer, int and long parse to int;
// boolean is true iff the value string equals "true" or "1" case
// insensitively; string passes through (stringifying non-strings). Any
// other or absent datatype leaves the raw value untouched.
//
// Arrays that are not uniformly @value-shaped, and plain objects, are
// normalized recursively; already-plain values pass through, which makes
// Normalize idempotent.
//
// All functions are pure and safe for concurrent use.
package normalize
