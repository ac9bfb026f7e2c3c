package vocabulary

import "strings"

// JSON-LD keywords used by the serialization core. These follow the
// JSON-LD 1.1 grammar; only the keywords this core touches are listed.
const (
	// KeywordContext maps terms and prefixes to IRIs
	KeywordContext = "@context"

	// KeywordValue wraps a literal in expanded document form
	KeywordValue = "@value"

	// KeywordType carries the datatype IRI of an expanded literal
	KeywordType = "@type"

	// KeywordList wraps an ordered sequence
	KeywordList = "@list"

	// KeywordID identifies a node
	KeywordID = "@id"

	// KeywordVocab sets the default vocabulary of a context
	KeywordVocab = "@vocab"
)

// IsKeyword reports whether key is a JSON-LD keyword. Keywords are
// skipped when walking the properties of expanded nodes.
func IsKeyword(key string) bool {
	return strings.HasPrefix(key, "@")
}
