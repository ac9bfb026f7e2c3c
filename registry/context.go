package registry

import (
	"fmt"
	"reflect"

	"github.com/c360/noid/errors"
	"github.com/c360/noid/vocabulary"
)

// RegistrationContext binds a namespace explicitly so call sites can
// register terms by local name without ambient namespace state. A context
// is a lightweight value; create one per vocabulary namespace.
//
//	ctx := reg.Namespace("https://ex.org/schemas/")
//	registry.MustRegisterIn(ctx, "widget", newWidget)
type RegistrationContext struct {
	registry  *Registry
	namespace string
}

// Namespace returns a registration context for ns. The namespace is used
// verbatim as an IRI prefix; pass it with its trailing separator
// ("https://ex.org/schemas/", not "https://ex.org/schemas").
func (r *Registry) Namespace(ns string) *RegistrationContext {
	return &RegistrationContext{registry: r, namespace: ns}
}

// IRI returns the full IRI the context would bind name under.
func (c *RegistrationContext) IRI(name string) string {
	return c.namespace + name
}

// Register binds an untyped factory under the context namespace plus name.
func (c *RegistrationContext) Register(name string, factory Factory, opts ...Option) error {
	if err := c.validate(name); err != nil {
		return err
	}
	var fnptr uintptr
	if factory != nil {
		fnptr = reflect.ValueOf(factory).Pointer()
	}
	return c.registry.RegisterFactory(c.IRI(name), nil, factory, fnptr, opts...)
}

// RegisterIn binds a typed factory under the context namespace plus name,
// recording T as the product type for reverse lookup.
func RegisterIn[T any](c *RegistrationContext, name string, factory func(data any) (T, error), opts ...Option) error {
	if err := c.validate(name); err != nil {
		return err
	}
	return Register(c.registry, c.IRI(name), factory, opts...)
}

// MustRegisterIn is RegisterIn but panics on error. Intended for package
// init-time registration.
func MustRegisterIn[T any](c *RegistrationContext, name string, factory func(data any) (T, error), opts ...Option) {
	if err := RegisterIn(c, name, factory, opts...); err != nil {
		panic(err)
	}
}

func (c *RegistrationContext) validate(name string) error {
	if c.namespace == "" {
		return errors.WrapInvalid(errors.ErrEmptyNamespace, "RegistrationContext", "Register", "namespace validation")
	}
	if name == "" {
		return errors.WrapInvalid(errors.ErrEmptyIRI, "RegistrationContext", "Register", "name validation")
	}
	if vocabulary.IsKeyword(name) {
		return errors.WrapInvalid(
			fmt.Errorf("name %q must not be a JSON-LD keyword", name),
			"RegistrationContext", "Register", "name validation")
	}
	if vocabulary.IsAbsoluteIRI(name) {
		return errors.WrapInvalid(
			fmt.Errorf("name %q must be a local name, not an IRI", name),
			"RegistrationContext", "Register", "name validation")
	}
	return nil
}
