// Package errors provides standardized error handling patterns for noid.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing). It also defines the typed error
// taxonomy for the registry and serialization core:
//
//   - UnknownIRIError: dispatch against an unregistered IRI
//   - FactoryValidationError: a registered factory rejected its input
//   - RegistrationCollisionError: two distinct factories bound to one IRI
//
// plus sentinel errors for document-level failures in jsonld.Parser
// (ErrNotAnObject, ErrInvalidJSON, ErrEmptyDocument, ErrNoMappableTerms),
// each distinguishable with errors.Is so callers and tests can assert on
// the failure kind rather than on message text.
//
// # Classification
//
// Registration collisions classify Fatal: they indicate a programming error
// at load time and are never recoverable at runtime. Document and factory
// errors classify Invalid: the input was bad and retrying will not help.
// External processor failures classify Transient: remote context loading
// can fail for network reasons.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	errors.WrapInvalid(err, "Registry", "Register", "factory validation")
//	// -> "Registry.Register: factory validation failed: <original error>"
//
// Use Wrap for plain context, WrapInvalid/WrapFatal/WrapTransient to attach
// a classification as well.
package errors
