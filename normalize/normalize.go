package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/noid/vocabulary"
)

// Normalize converts an expanded JSON-LD value to a plain value.
//
// JSON-LD expansion wraps every literal as a single-element array of
// {"@value": ...} objects; Normalize undoes that. Uniform @value arrays
// are unwrapped element-wise, with a single surviving element returned
// bare. Mixed arrays and plain objects are normalized recursively.
// Scalars pass through unchanged.
//
// Normalize is pure and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(value any) any {
	switch v := value.(type) {
	case []any:
		if allValueObjects(v) {
			out := make([]any, 0, len(v))
			for _, elem := range v {
				out = append(out, extractValue(elem.(map[string]any)))
			}
			if len(out) == 1 {
				return out[0]
			}
			return out
		}
		out := make([]any, 0, len(v))
		for _, elem := range v {
			out = append(out, Normalize(elem))
		}
		return out
	case map[string]any:
		if _, ok := v[vocabulary.KeywordValue]; ok {
			// Bare @value object. Spec-compliant expanders always array
			// these, but normalize them anyway.
			return extractValue(v)
		}
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = Normalize(elem)
		}
		return out
	default:
		return value
	}
}

// IsExpanded reports whether value has expanded literal shape: an array
// whose every element is an object containing @value, or such an object
// itself. Intended as a diagnostic guard; Normalize does not require it.
func IsExpanded(value any) bool {
	switch v := value.(type) {
	case []any:
		return allValueObjects(v)
	case map[string]any:
		_, ok := v[vocabulary.KeywordValue]
		return ok
	default:
		return false
	}
}

// allValueObjects reports whether every element of arr is an object
// containing @value. Empty arrays do not qualify.
func allValueObjects(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	for _, elem := range arr {
		obj, ok := elem.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := obj[vocabulary.KeywordValue]; !ok {
			return false
		}
	}
	return true
}

// extractValue pulls the literal out of a {"@value": v, "@type": t} object,
// applying XSD datatype coercion when a recognized @type is present.
func extractValue(obj map[string]any) any {
	raw := obj[vocabulary.KeywordValue]

	typeIRI, ok := obj[vocabulary.KeywordType].(string)
	if !ok || typeIRI == "" {
		return raw
	}
	return coerce(raw, typeIRI)
}

// coerce applies the XSD datatype coercion table, keyed on the full
// datatype IRIs from the vocabulary package. Unrecognized datatypes and
// unparseable values pass the raw value through unchanged.
func coerce(raw any, typeIRI string) any {
	switch typeIRI {
	case vocabulary.XSDFloat, vocabulary.XSDDouble, vocabulary.XSDDecimal:
		switch v := raw.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return raw
	case vocabulary.XSDInteger, vocabulary.XSDInt, vocabulary.XSDLong:
		switch v := raw.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
		return raw
	case vocabulary.XSDBoolean:
		switch v := raw.(type) {
		case bool:
			return v
		case string:
			lower := strings.ToLower(v)
			return lower == "true" || lower == "1"
		case float64:
			return v == 1
		}
		return false
	case vocabulary.XSDString:
		if s, ok := raw.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", raw)
	default:
		return raw
	}
}
