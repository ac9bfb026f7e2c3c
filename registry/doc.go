// Package registry maps IRIs to object factories, enabling dynamic and
// extensible construction of domain objects from semantic data.
//
// # Overview
//
// A Registry holds an append-only table of IRI to factory bindings. Each
// binding records the factory's product type, so the mapping runs in both
// directions: Create dispatches from an IRI to a constructed object, and
// IRIForObject recovers the IRI a constructed object's type was registered
// under.
//
// Domain packages register their vocabularies during initialization,
// typically against the Global registry through a RegistrationContext that
// carries the namespace explicitly:
//
//	var schemas = registry.Global().Namespace("https://ex.org/schemas/")
//
//	func init() {
//	    registry.MustRegisterIn(schemas, "widget", newWidget,
//	        registry.WithDescription("A widget with a size and a label"))
//	}
//
// The full IRI of a binding is fixed at registration time; nothing about a
// context or the registry's later state changes it.
//
// # Collision semantics
//
// An IRI maps to at most one factory. Re-registering an IRI with the same
// factory function is a no-op, which keeps repeated package initialization
// harmless. Re-registering with a different factory fails immediately with
// a RegistrationCollisionError; collisions surface at load time, never at
// dispatch time.
//
// # Dispatch semantics
//
// Create(iri, data) returns the factory's product, an UnknownIRIError
// listing every registered IRI when the binding is missing, or a
// FactoryValidationError chaining the factory's own error (panics
// included). Create never returns (nil, nil).
//
// # Concurrency
//
// All methods are safe for concurrent use. Registration takes a write
// lock; dispatch and introspection take read locks. Introspection methods
// return snapshots, not live views.
package registry
