package errors

import (
	"fmt"
	"strings"
)

// UnknownIRIError reports a dispatch attempt against an IRI that has no
// registered factory. It carries the requested IRI and the sorted list of
// IRIs that are registered, so callers can produce actionable diagnostics.
type UnknownIRIError struct {
	IRI   string
	Known []string
}

// Error implements the error interface
func (e *UnknownIRIError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("no factory registered for IRI %q (registry is empty)", e.IRI)
	}
	return fmt.Sprintf("no factory registered for IRI %q (known IRIs: %s)",
		e.IRI, strings.Join(e.Known, ", "))
}

// FactoryValidationError reports that a registered factory rejected the
// data it was given. The original factory error is chained and available
// via Unwrap.
type FactoryValidationError struct {
	IRI  string
	Data any
	Err  error
}

// Error implements the error interface
func (e *FactoryValidationError) Error() string {
	return fmt.Sprintf("factory for IRI %q failed to construct from %v: %v", e.IRI, e.Data, e.Err)
}

// Unwrap returns the underlying factory error
func (e *FactoryValidationError) Unwrap() error {
	return e.Err
}

// RegistrationCollisionError reports an attempt to register a second,
// distinct factory under an IRI that is already bound. Collisions are
// detected at registration time, not at dispatch time.
type RegistrationCollisionError struct {
	IRI string
}

// Error implements the error interface
func (e *RegistrationCollisionError) Error() string {
	return fmt.Sprintf("IRI %q is already registered with a different factory", e.IRI)
}
