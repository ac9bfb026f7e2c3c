package jsonld

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/c360/noid/errors"
	"github.com/c360/noid/metric"
	"github.com/c360/noid/normalize"
	"github.com/c360/noid/registry"
	"github.com/c360/noid/vocabulary"
)

// Parser reconstructs registered domain objects from JSON-LD documents.
type Parser struct {
	registry  *registry.Registry
	processor Processor
	logger    *slog.Logger
	metrics   *metric.Metrics
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithProcessor sets the external JSON-LD processor. Defaults to the
// json-gold backed processor from NewProcessor.
func WithProcessor(p Processor) ParserOption {
	return func(parser *Parser) {
		parser.processor = p
	}
}

// WithParserLogger sets the structured logger. Defaults to slog.Default().
func WithParserLogger(logger *slog.Logger) ParserOption {
	return func(parser *Parser) {
		parser.logger = logger
	}
}

// WithParserMetrics attaches parse instrumentation.
func WithParserMetrics(m *metric.Metrics) ParserOption {
	return func(parser *Parser) {
		parser.metrics = m
	}
}

// NewParser creates a Parser backed by reg for object construction.
func NewParser(reg *registry.Registry, opts ...ParserOption) *Parser {
	p := &Parser{
		registry: reg,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.processor == nil {
		p.processor = NewProcessor()
	}
	return p
}

// FromJSONLD parses a JSON-LD document and reconstructs registered
// objects from its properties.
//
// doc may be an already-parsed map, or JSON text as a string or []byte.
// The document is expanded by the external processor; each expanded
// property is normalized and dispatched through the registry. Properties
// whose IRI has no registered factory, or whose factory rejects the data,
// degrade to their normalized plain value under the same key, with a
// warning logged; one unknown vocabulary term never aborts the document.
//
// The original @context is preserved verbatim in the result, and original
// top-level keys the expansion never touched are copied through
// unchanged.
func (p *Parser) FromJSONLD(doc any) (map[string]any, error) {
	start := time.Now()

	result, degraded, err := p.parse(doc)

	if p.metrics != nil {
		outcome := metric.OutcomeSuccess
		switch {
		case err != nil:
			outcome = metric.OutcomeError
		case degraded:
			outcome = metric.OutcomeDegraded
		}
		p.metrics.RecordParse(outcome, time.Since(start))
	}
	return result, err
}

func (p *Parser) parse(doc any) (map[string]any, bool, error) {
	docMap, err := coerceDocument(doc)
	if err != nil {
		return nil, false, err
	}

	expanded, err := p.processor.Expand(docMap)
	if err != nil {
		return nil, false, err
	}

	if len(expanded) == 0 {
		return nil, false, emptyExpansionError(docMap)
	}

	originalContext, hasContext := docMap[vocabulary.KeywordContext]

	result := make(map[string]any)
	consumed := make(map[string]bool)
	degraded := false

	for _, node := range expanded {
		nodeMap, ok := node.(map[string]any)
		if !ok {
			continue
		}
		for iri, rawValue := range nodeMap {
			if vocabulary.IsKeyword(iri) {
				continue
			}

			shortKey := deriveShortKey(iri, originalContext)
			for _, spelling := range contextSpellings(iri, originalContext) {
				consumed[spelling] = true
			}

			value := normalize.Normalize(rawValue)

			obj, createErr := p.registry.Create(iri, value)
			if createErr != nil {
				p.logger.Warn("could not construct object, passing data through",
					"iri", iri,
					"key", shortKey,
					"error", createErr)
				result[shortKey] = value
				degraded = true
				continue
			}
			result[shortKey] = obj
		}
	}

	if hasContext {
		result[vocabulary.KeywordContext] = originalContext
	}

	// Keys the expansion never visited have no namespace mapping; copy
	// them through unchanged.
	for key, value := range docMap {
		if vocabulary.IsKeyword(key) || consumed[key] {
			continue
		}
		if _, present := result[key]; !present {
			result[key] = value
		}
	}

	return result, degraded, nil
}

// coerceDocument accepts a parsed document or JSON text and returns the
// document as a map.
func coerceDocument(doc any) (map[string]any, error) {
	switch v := doc.(type) {
	case map[string]any:
		return v, nil
	case string:
		return parseJSONDocument([]byte(v))
	case []byte:
		return parseJSONDocument(v)
	case nil:
		return nil, errors.WrapInvalid(errors.ErrNotAnObject, "Parser", "FromJSONLD", "input validation")
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: got %T", errors.ErrNotAnObject, doc),
			"Parser", "FromJSONLD", "input validation")
	}
}

func parseJSONDocument(data []byte) (map[string]any, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrInvalidJSON, err),
			"Parser", "FromJSONLD", "JSON parsing")
	}
	docMap, ok := parsed.(map[string]any)
	if !ok {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: got %T", errors.ErrNotAnObject, parsed),
			"Parser", "FromJSONLD", "input validation")
	}
	return docMap, nil
}

// emptyExpansionError distinguishes a document with no data at all from
// one whose terms the context could not map to IRIs.
func emptyExpansionError(docMap map[string]any) error {
	var unmapped []string
	for key := range docMap {
		if !vocabulary.IsKeyword(key) {
			unmapped = append(unmapped, key)
		}
	}

	if len(unmapped) == 0 {
		return errors.WrapInvalid(errors.ErrEmptyDocument, "Parser", "FromJSONLD", "document validation")
	}

	sort.Strings(unmapped)
	return errors.WrapInvalid(
		fmt.Errorf("%w: unmappable keys: %s", errors.ErrNoMappableTerms, strings.Join(unmapped, ", ")),
		"Parser", "FromJSONLD", "document validation")
}

// contextSpellings returns every key under which the original document
// could have spelled a property that expanded to iri: the full IRI, its
// local name, and prefix:suffix for every context prefix whose namespace
// is an IRI-prefix of it. The copy-through pass must treat all of them
// as visited, not just the spelling deriveShortKey picks.
func contextSpellings(iri string, context any) []string {
	spellings := []string{iri, vocabulary.LocalName(iri)}

	contextMap, ok := context.(map[string]any)
	if !ok {
		return spellings
	}
	for prefix, nsValue := range contextMap {
		if vocabulary.IsKeyword(prefix) {
			continue
		}
		ns, ok := nsValue.(string)
		if !ok || ns == "" {
			continue
		}
		if strings.HasPrefix(iri, ns) && len(ns) < len(iri) {
			spellings = append(spellings, prefix+":"+iri[len(ns):])
		}
	}
	return spellings
}

// deriveShortKey compacts a full IRI using the original document context:
// the prefix of the longest context namespace that is an IRI-prefix of
// the full IRI wins, ties broken by lexicographically smallest prefix so
// the result is deterministic. Falls back to the IRI's local name.
func deriveShortKey(iri string, context any) string {
	contextMap, ok := context.(map[string]any)
	if !ok {
		return vocabulary.LocalName(iri)
	}

	bestPrefix := ""
	bestNS := ""
	for prefix, nsValue := range contextMap {
		if vocabulary.IsKeyword(prefix) {
			continue
		}
		ns, ok := nsValue.(string)
		if !ok || ns == "" {
			continue
		}
		if !strings.HasPrefix(iri, ns) || len(ns) == len(iri) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && (bestPrefix == "" || prefix < bestPrefix)) {
			bestPrefix = prefix
			bestNS = ns
		}
	}

	if bestPrefix != "" {
		return bestPrefix + ":" + iri[len(bestNS):]
	}
	return vocabulary.LocalName(iri)
}
