package jsonld

import (
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/c360/noid/errors"
)

// Processor is the external JSON-LD 1.1 processor this core delegates to.
// It is a black-box collaborator: expansion, compaction and flattening
// follow the JSON-LD 1.1 algorithms and are never reimplemented here.
type Processor interface {
	// Expand converts a document to expanded form: a list of node objects
	// with full IRIs for keys and literals wrapped as {"@value": ...}.
	Expand(doc any) ([]any, error)

	// Compact shortens a document's IRIs using the given context.
	Compact(doc any, context any) (map[string]any, error)

	// Flatten collects all nodes of a document into a flat list.
	Flatten(doc any) (any, error)
}

// ProcessorOption configures the default processor.
type ProcessorOption func(*ldProcessor)

// WithBaseIRI sets the base IRI used to resolve relative IRIs.
func WithBaseIRI(base string) ProcessorOption {
	return func(p *ldProcessor) {
		p.base = base
	}
}

// WithProcessingMode selects the JSON-LD processing mode, e.g.
// "json-ld-1.1" (the default) or "json-ld-1.0".
func WithProcessingMode(mode string) ProcessorOption {
	return func(p *ldProcessor) {
		p.mode = mode
	}
}

// WithDocumentLoader installs a loader for remote contexts. The default
// loader fetches over the network; installing a preloaded loader is
// recommended for hermetic operation.
func WithDocumentLoader(loader ld.DocumentLoader) ProcessorOption {
	return func(p *ldProcessor) {
		p.loader = loader
	}
}

// ldProcessor implements Processor on top of piprate/json-gold.
type ldProcessor struct {
	proc   *ld.JsonLdProcessor
	base   string
	mode   string
	loader ld.DocumentLoader
}

// NewProcessor creates the default JSON-LD processor.
func NewProcessor(opts ...ProcessorOption) Processor {
	p := &ldProcessor{
		proc: ld.NewJsonLdProcessor(),
		mode: ld.JsonLd_1_1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ldProcessor) options() *ld.JsonLdOptions {
	opts := ld.NewJsonLdOptions(p.base)
	opts.ProcessingMode = p.mode
	if p.loader != nil {
		opts.DocumentLoader = p.loader
	}
	return opts
}

// Expand implements Processor
func (p *ldProcessor) Expand(doc any) ([]any, error) {
	expanded, err := p.proc.Expand(doc, p.options())
	if err != nil {
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: %v", errors.ErrExpansionFailed, err),
			"Processor", "Expand", "document expansion")
	}
	return expanded, nil
}

// Compact implements Processor
func (p *ldProcessor) Compact(doc any, context any) (map[string]any, error) {
	compacted, err := p.proc.Compact(doc, context, p.options())
	if err != nil {
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: %v", errors.ErrCompactionFailed, err),
			"Processor", "Compact", "document compaction")
	}
	return compacted, nil
}

// Flatten implements Processor
func (p *ldProcessor) Flatten(doc any) (any, error) {
	flattened, err := p.proc.Flatten(doc, nil, p.options())
	if err != nil {
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: %v", errors.ErrExpansionFailed, err),
			"Processor", "Flatten", "document flattening")
	}
	return flattened, nil
}
