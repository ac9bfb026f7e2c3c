package registry

import "sync"

// Global registry instance and initialization guard.
var (
	globalMu       sync.Mutex
	globalRegistry *Registry
)

// Global returns the process-wide registry, creating it on first call.
// Domain packages register their vocabularies here from init functions.
func Global() *Registry {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalRegistry == nil {
		globalRegistry = New()
	}
	return globalRegistry
}

// ResetGlobal replaces the global registry with a fresh empty one.
// Intended for tests that need registration isolation; production code
// never tears down the registry before process exit.
func ResetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalRegistry = nil
}
