package registry

import "reflect"

// Option is a functional option for configuring a registration.
type Option func(*Registration)

// WithType overrides the recorded product type of the binding. Untyped
// registrations can use it to participate in reverse lookup.
func WithType(t reflect.Type) Option {
	return func(reg *Registration) {
		reg.Type = t
	}
}

// WithDescription sets the human-readable description of the binding.
func WithDescription(desc string) Option {
	return func(reg *Registration) {
		reg.Description = desc
	}
}

// WithExample attaches example input data to the binding. Used for
// diagnostics and documentation; never consulted during dispatch.
func WithExample(example map[string]any) Option {
	return func(reg *Registration) {
		reg.Example = example
	}
}
