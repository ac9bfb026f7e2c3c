package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorClass partitions errors by how callers should handle them.
type ErrorClass int

const (
	// ErrorTransient marks failures that may succeed on retry.
	ErrorTransient ErrorClass = iota
	// ErrorInvalid marks failures caused by bad input or configuration.
	ErrorInvalid
	// ErrorFatal marks unrecoverable failures.
	ErrorFatal
)

func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Sentinel errors. Tests and callers match these with errors.Is.
var (
	// Document-level failures surfaced by jsonld.Parser.
	ErrNotAnObject     = errors.New("document is not a JSON object")
	ErrInvalidJSON     = errors.New("document is not valid JSON")
	ErrEmptyDocument   = errors.New("document contains no data")
	ErrNoMappableTerms = errors.New("document contains no mappable terms")

	// Registration failures.
	ErrNilFactory     = errors.New("factory cannot be nil")
	ErrEmptyIRI       = errors.New("IRI cannot be empty")
	ErrEmptyNamespace = errors.New("namespace cannot be empty")

	// Configuration failures.
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")

	// External processor failures.
	ErrExpansionFailed  = errors.New("JSON-LD expansion failed")
	ErrCompactionFailed = errors.New("JSON-LD compaction failed")
)

// ClassifiedError carries an ErrorClass alongside the wrapped error and
// the component/operation context it was raised in.
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsTransient reports whether err may succeed on retry. Processor
// failures count as transient: remote context loading is network-bound.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if class, ok := explicitClass(err); ok {
		return class == ErrorTransient
	}
	return errors.Is(err, ErrExpansionFailed) ||
		errors.Is(err, ErrCompactionFailed) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// IsFatal reports whether err should stop processing. Registration
// collisions are fatal: they indicate a load-time programming error.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if class, ok := explicitClass(err); ok {
		return class == ErrorFatal
	}

	var collision *RegistrationCollisionError
	if errors.As(err, &collision) || errors.Is(err, ErrMissingConfig) {
		return true
	}

	// Heuristic of last resort for errors from outside the taxonomy.
	return strings.Contains(strings.ToLower(err.Error()), "fatal")
}

// IsInvalid reports whether err was caused by bad input.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	if class, ok := explicitClass(err); ok {
		return class == ErrorInvalid
	}

	var unknown *UnknownIRIError
	var factory *FactoryValidationError
	if errors.As(err, &unknown) || errors.As(err, &factory) {
		return true
	}

	return errors.Is(err, ErrNotAnObject) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrEmptyDocument) ||
		errors.Is(err, ErrNoMappableTerms) ||
		errors.Is(err, ErrInvalidConfig)
}

// Classify maps err onto an ErrorClass, defaulting to transient for
// errors outside the taxonomy.
func Classify(err error) ErrorClass {
	switch {
	case IsFatal(err):
		return ErrorFatal
	case IsInvalid(err):
		return ErrorInvalid
	default:
		return ErrorTransient
	}
}

// explicitClass extracts the class of a ClassifiedError in err's chain.
func explicitClass(err error) (ErrorClass, bool) {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class, true
	}
	return 0, false
}

// Wrap adds component/method/action context in the standard format:
// "component.method: action failed: %w". Returns nil for a nil err.
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps err with context and a transient classification.
func WrapTransient(err error, component, method, action string) error {
	return wrapClassified(ErrorTransient, err, component, method, action)
}

// WrapFatal wraps err with context and a fatal classification.
func WrapFatal(err error, component, method, action string) error {
	return wrapClassified(ErrorFatal, err, component, method, action)
}

// WrapInvalid wraps err with context and an invalid classification.
func WrapInvalid(err error, component, method, action string) error {
	return wrapClassified(ErrorInvalid, err, component, method, action)
}

func wrapClassified(class ErrorClass, err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return &ClassifiedError{
		Class:     class,
		Err:       wrapped,
		Message:   wrapped.Error(),
		Component: component,
		Operation: method,
	}
}
