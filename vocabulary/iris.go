package vocabulary

import "strings"

// NamespaceOf derives the namespace of an IRI: the string up to and
// including its final path separator ('/' or '#'). IRIs with no separator
// gain a trailing '/' so the result is always a usable namespace.
//
// Examples:
//   - "https://ex.org/schemas/widget" -> "https://ex.org/schemas/"
//   - "http://www.w3.org/2001/XMLSchema#float" -> "http://www.w3.org/2001/XMLSchema#"
//   - "urn-like-token" -> "urn-like-token/"
func NamespaceOf(iri string) string {
	if iri == "" {
		return ""
	}

	idx := lastSeparator(iri)
	if idx < 0 {
		return iri + "/"
	}
	return iri[:idx+1]
}

// LocalName returns the substring of an IRI after its final '/' or '#',
// or the whole IRI when no separator exists.
//
// Examples:
//   - "https://ex.org/schemas/widget" -> "widget"
//   - "http://www.w3.org/2001/XMLSchema#float" -> "float"
//   - "widget" -> "widget"
func LocalName(iri string) string {
	idx := lastSeparator(iri)
	if idx < 0 {
		return iri
	}
	return iri[idx+1:]
}

// IsAbsoluteIRI reports whether s looks like an absolute IRI, i.e. carries
// a scheme-like prefix such as "https://" or "urn:". Compact prefixed
// names ("ex:widget") also match, since their prefix is indistinguishable
// from a scheme without a context. Registration validation uses it to
// reject IRI-shaped local names.
func IsAbsoluteIRI(s string) bool {
	if s == "" {
		return false
	}

	colon := strings.Index(s, ":")
	if colon <= 0 {
		return false
	}

	// Scheme must be alphanumeric (plus "+-.") and start with a letter.
	scheme := s[:colon]
	for i, r := range scheme {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// lastSeparator returns the index of the final '/' or '#' in iri, or -1.
func lastSeparator(iri string) int {
	slash := strings.LastIndex(iri, "/")
	hash := strings.LastIndex(iri, "#")
	if hash > slash {
		return hash
	}
	return slash
}
