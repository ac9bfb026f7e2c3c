package jsonld

import (
	"encoding/json"
	"log/slog"
	"reflect"
	"time"

	"github.com/c360/noid/errors"
	"github.com/c360/noid/metric"
	"github.com/c360/noid/registry"
	"github.com/c360/noid/vocabulary"
)

// Serializable is the capability interface domain types implement to
// control their serialized representation. Objects without it are
// serialized as-is.
type Serializable interface {
	// ToData returns the plain-data form of the object: a scalar, slice,
	// or map structure suitable for JSON encoding.
	ToData() any
}

// genericKey is the fallback key for a single unregistered object.
const genericKey = "value"

// Serializer converts registered domain objects to compact JSON-LD.
type Serializer struct {
	registry *registry.Registry
	logger   *slog.Logger
	metrics  *metric.Metrics
}

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// WithSerializerLogger sets the structured logger. Defaults to
// slog.Default().
func WithSerializerLogger(logger *slog.Logger) SerializerOption {
	return func(s *Serializer) {
		s.logger = logger
	}
}

// WithSerializerMetrics attaches serialization instrumentation.
func WithSerializerMetrics(m *metric.Metrics) SerializerOption {
	return func(s *Serializer) {
		s.metrics = m
	}
}

// NewSerializer creates a Serializer backed by reg for IRI lookups.
func NewSerializer(reg *registry.Registry, opts ...SerializerOption) *Serializer {
	s := &Serializer{
		registry: reg,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarshalOption configures a single ToJSONLD call.
type MarshalOption func(*marshalConfig)

type marshalConfig struct {
	includeContext bool
	indent         string
	indented       bool
}

// WithoutContext omits the @context and skips key abbreviation; original
// keys are retained. This is the plain-JSON fast path.
func WithoutContext() MarshalOption {
	return func(c *marshalConfig) {
		c.includeContext = false
	}
}

// WithIndent stringifies the result to JSON text using the given
// indentation instead of returning a structured value.
func WithIndent(indent string) MarshalOption {
	return func(c *marshalConfig) {
		c.indent = indent
		c.indented = true
	}
}

// ToJSONLD serializes data to a compact JSON-LD document.
//
// Slices serialize through the @list construct with order preserved.
// Maps serialize entry-wise, abbreviating the keys of registered objects
// to prefix:localName form with a context derived from all namespaces in
// the map. A single registered object is wrapped under its local name.
//
// The result is a structured value unless WithIndent was given, in which
// case it is a JSON string.
func (s *Serializer) ToJSONLD(data any, opts ...MarshalOption) (any, error) {
	start := time.Now()

	cfg := marshalConfig{includeContext: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	result, err := s.marshal(data, cfg)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordSerialize(metric.OutcomeError, time.Since(start))
		}
		return nil, err
	}

	if cfg.indented {
		encoded, err := json.MarshalIndent(result, "", cfg.indent)
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordSerialize(metric.OutcomeError, time.Since(start))
			}
			return nil, errors.WrapInvalid(err, "Serializer", "ToJSONLD", "JSON encoding")
		}
		result = string(encoded)
	}

	if s.metrics != nil {
		s.metrics.RecordSerialize(metric.OutcomeSuccess, time.Since(start))
	}
	return result, nil
}

func (s *Serializer) marshal(data any, cfg marshalConfig) (any, error) {
	switch v := data.(type) {
	case map[string]any:
		return s.marshalMap(v, cfg), nil
	case []any:
		return s.marshalList(v, cfg), nil
	default:
		if items, ok := asSlice(data); ok {
			return s.marshalList(items, cfg), nil
		}
		return s.marshalSingle(data, cfg), nil
	}
}

// marshalList serializes an ordered sequence using the @list construct.
// Order is preserved exactly, including the empty sequence.
func (s *Serializer) marshalList(items []any, cfg marshalConfig) map[string]any {
	abbr := ForNamespaces(s.harvestNamespaces(items))

	serialized := make([]any, 0, len(items))
	for _, item := range items {
		serialized = append(serialized, s.serializeItem(item, abbr, cfg))
	}

	result := map[string]any{vocabulary.KeywordList: serialized}
	s.attachContext(result, abbr, cfg)
	return result
}

// marshalMap serializes each entry, abbreviating the keys of registered
// objects. Entries whose object has no registered IRI keep their key.
func (s *Serializer) marshalMap(data map[string]any, cfg marshalConfig) map[string]any {
	var objects []any
	for key, obj := range data {
		if key == vocabulary.KeywordContext {
			continue
		}
		objects = append(objects, obj)
	}
	abbr := ForNamespaces(s.harvestNamespaces(objects))

	result := make(map[string]any, len(data))
	for key, obj := range data {
		if key == vocabulary.KeywordContext {
			continue
		}
		iri, registered := s.registry.IRIForObject(obj)
		if !registered || !cfg.includeContext {
			result[key] = toData(obj)
			continue
		}
		prefix := abbr.Abbreviation(vocabulary.NamespaceOf(iri))
		result[prefix+":"+vocabulary.LocalName(iri)] = toData(obj)
	}

	s.attachContext(result, abbr, cfg)
	return result
}

// marshalSingle wraps a bare object as a one-entry map keyed by the
// object's registered local name, then serializes it as a map.
func (s *Serializer) marshalSingle(data any, cfg marshalConfig) map[string]any {
	key := genericKey
	if iri, ok := s.registry.IRIForObject(data); ok {
		key = vocabulary.LocalName(iri)
	}
	return s.marshalMap(map[string]any{key: data}, cfg)
}

// serializeItem serializes one list element: registered objects become a
// single-key object named by their (abbreviated) local name, everything
// else passes through its data form.
func (s *Serializer) serializeItem(item any, abbr *Abbreviator, cfg marshalConfig) any {
	iri, registered := s.registry.IRIForObject(item)
	if !registered {
		return toData(item)
	}

	localName := vocabulary.LocalName(iri)
	if !cfg.includeContext {
		return map[string]any{localName: toData(item)}
	}
	prefix := abbr.Abbreviation(vocabulary.NamespaceOf(iri))
	return map[string]any{prefix + ":" + localName: toData(item)}
}

// harvestNamespaces collects the namespaces of every registered object in
// items, for seeding a per-call abbreviator.
func (s *Serializer) harvestNamespaces(items []any) []string {
	seen := make(map[string]bool)
	var namespaces []string
	for _, item := range items {
		iri, ok := s.registry.IRIForObject(item)
		if !ok {
			continue
		}
		ns := vocabulary.NamespaceOf(iri)
		if !seen[ns] {
			seen[ns] = true
			namespaces = append(namespaces, ns)
		}
	}
	return namespaces
}

// attachContext adds the @context mapping when requested and non-empty.
// Prefixes that degraded to a full namespace IRI are flagged: such a
// "prefix" is not a valid compact name, but it is unique and lossless.
func (s *Serializer) attachContext(result map[string]any, abbr *Abbreviator, cfg marshalConfig) {
	if !cfg.includeContext {
		return
	}
	prefixes := abbr.Prefixes()
	if len(prefixes) == 0 {
		return
	}

	context := make(map[string]any, len(prefixes))
	for prefix, ns := range prefixes {
		if prefix == ns {
			s.logger.Warn("prefix degraded to full namespace IRI",
				"namespace", ns)
		}
		context[prefix] = ns
	}
	result[vocabulary.KeywordContext] = context
}

// toData returns an object's plain-data form: its ToData result when the
// object implements Serializable, the object itself otherwise.
func toData(obj any) any {
	if s, ok := obj.(Serializable); ok {
		return s.ToData()
	}
	return obj
}

// asSlice converts any slice or array value (except strings and byte
// slices) to []any via reflection.
func asSlice(data any) ([]any, bool) {
	if data == nil {
		return nil, false
	}
	if _, isBytes := data.([]byte); isBytes {
		return nil, false
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		items[i] = v.Index(i).Interface()
	}
	return items, true
}
