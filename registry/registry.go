package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/c360/noid/errors"
	"github.com/c360/noid/metric"
)

// Factory creates a domain object from normalized data. The factory
// returns an any to keep the registry domain-agnostic; typed registration
// via Register[T] records the product type for reverse lookup.
type Factory func(data any) (any, error)

// Registration holds the metadata recorded for one IRI binding.
// Factories are intentionally not exposed through introspection.
type Registration struct {
	IRI         string         `json:"iri"`
	Type        reflect.Type   `json:"-"`
	Description string         `json:"description"` // Human-readable description
	Example     map[string]any `json:"example"`     // Optional example input data
}

// entry is a Registration plus the parts introspection must not leak.
type entry struct {
	Registration
	factory Factory
	fnptr   uintptr // identity of the originally registered function
}

// Registry provides thread-safe IRI to factory dispatch. The table is
// append-only: bindings are never removed or replaced, so the reverse
// type lookup is deterministic for the process lifetime.
//
// Registration is expected during package initialization but is guarded
// by a mutex, so late or concurrent registration is safe.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string // IRIs in registration order, for reverse lookup
	metrics *metric.Metrics
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// WithMetrics attaches dispatch instrumentation. Passing nil disables
// recording. Returns the registry for chaining during construction.
func (r *Registry) WithMetrics(m *metric.Metrics) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
	if m != nil {
		m.SetRegisteredFactories(len(r.entries))
	}
	return r
}

// Register binds factory under iri in r, recording T as the product type
// for reverse lookup. Re-registering the same IRI with the same factory
// function is a no-op; a distinct factory returns a
// RegistrationCollisionError.
func Register[T any](r *Registry, iri string, factory func(data any) (T, error), opts ...Option) error {
	if factory == nil {
		return errors.WrapInvalid(errors.ErrNilFactory, "Registry", "Register", "factory validation")
	}
	productType := reflect.TypeOf((*T)(nil)).Elem()
	wrapped := func(data any) (any, error) {
		return factory(data)
	}
	return r.RegisterFactory(iri, productType, wrapped, reflect.ValueOf(factory).Pointer(), opts...)
}

// MustRegister is Register but panics on error. Intended for package
// init-time registration where a failure is a programming error.
func MustRegister[T any](r *Registry, iri string, factory func(data any) (T, error), opts ...Option) {
	if err := Register(r, iri, factory, opts...); err != nil {
		panic(err)
	}
}

// RegisterFactory is the untyped registration form. productType may be nil
// for factories whose product type is unknown; such bindings dispatch
// normally but do not participate in reverse lookup. fnptr identifies the
// original factory function so identical re-registration can be detected;
// pass 0 to treat every call as a distinct factory.
func (r *Registry) RegisterFactory(
	iri string, productType reflect.Type, factory Factory, fnptr uintptr, opts ...Option) error {
	if iri == "" {
		return errors.WrapInvalid(errors.ErrEmptyIRI, "Registry", "RegisterFactory", "IRI validation")
	}
	if factory == nil {
		return errors.WrapInvalid(errors.ErrNilFactory, "Registry", "RegisterFactory", "factory validation")
	}

	e := &entry{
		Registration: Registration{
			IRI:  iri,
			Type: productType,
		},
		factory: factory,
		fnptr:   fnptr,
	}
	for _, opt := range opts {
		opt(&e.Registration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.entries[iri]; exists {
		if fnptr != 0 && existing.fnptr == fnptr {
			// Identical factory re-registered under the same IRI: no-op.
			return nil
		}
		if r.metrics != nil {
			r.metrics.RecordRegistration("collision")
		}
		return &errors.RegistrationCollisionError{IRI: iri}
	}

	r.entries[iri] = e
	r.order = append(r.order, iri)

	if r.metrics != nil {
		r.metrics.RecordRegistration(metric.OutcomeSuccess)
		r.metrics.SetRegisteredFactories(len(r.entries))
	}
	return nil
}

// Create looks up the factory registered for iri and constructs an object
// from data. Returns an UnknownIRIError when no factory is registered, or
// a FactoryValidationError chaining the factory's failure. Never returns
// (nil, nil).
func (r *Registry) Create(iri string, data any) (any, error) {
	r.mu.RLock()
	e, exists := r.entries[iri]
	m := r.metrics
	r.mu.RUnlock()

	if !exists {
		if m != nil {
			m.RecordDispatch(metric.OutcomeUnknownIRI)
		}
		return nil, &errors.UnknownIRIError{IRI: iri, Known: r.IRIs()}
	}

	obj, err := callFactory(e.factory, data)
	if err != nil {
		if m != nil {
			m.RecordDispatch(metric.OutcomeFactoryError)
		}
		return nil, &errors.FactoryValidationError{IRI: iri, Data: data, Err: err}
	}
	if isNil(obj) {
		if m != nil {
			m.RecordDispatch(metric.OutcomeFactoryError)
		}
		return nil, &errors.FactoryValidationError{
			IRI: iri, Data: data, Err: fmt.Errorf("factory returned nil without error"),
		}
	}

	if m != nil {
		m.RecordDispatch(metric.OutcomeCreated)
	}
	return obj, nil
}

// callFactory invokes a factory, converting panics into errors so a
// misbehaving factory cannot take down the caller.
func callFactory(factory Factory, data any) (obj any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			obj = nil
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()
	return factory(data)
}

// isNil reports whether obj is nil, including a typed nil boxed in an
// interface, which a plain == nil comparison misses.
func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// IRIForObject looks up the IRI a constructed object's type was registered
// under. When a type was registered under multiple IRIs, the first IRI
// registered for that type wins (registration order).
func (r *Registry) IRIForObject(obj any) (string, bool) {
	if obj == nil {
		return "", false
	}
	t := reflect.TypeOf(obj)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, iri := range r.order {
		e := r.entries[iri]
		if e.Type != nil && e.Type == t {
			return iri, true
		}
	}
	return "", false
}

// IRIs returns a sorted copy of all registered IRIs.
func (r *Registry) IRIs() []string {
	r.mu.RLock()
	iris := make([]string, 0, len(r.entries))
	for iri := range r.entries {
		iris = append(iris, iri)
	}
	r.mu.RUnlock()

	sort.Strings(iris)
	return iris
}

// Types returns the registered product types in registration order, with
// duplicates removed. Bindings registered without a product type are
// omitted.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[reflect.Type]bool, len(r.order))
	types := make([]reflect.Type, 0, len(r.order))
	for _, iri := range r.order {
		t := r.entries[iri].Type
		if t == nil || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types
}

// Describe returns a copy of the registration metadata for iri.
func (r *Registry) Describe(iri string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.entries[iri]
	if !exists {
		return Registration{}, false
	}

	// Copy so callers cannot mutate the recorded example.
	reg := e.Registration
	if e.Example != nil {
		reg.Example = make(map[string]any, len(e.Example))
		for k, v := range e.Example {
			reg.Example[k] = v
		}
	}
	return reg, true
}

// Len returns the number of registered IRIs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
