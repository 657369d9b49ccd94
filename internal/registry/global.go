package registry

import "sync"

// GlobalRegistry is the process-wide registry used by the interactive shell
// and the batch entrypoint. Tests should construct their own registry with
// NewRegistry instead of sharing this one.
var GlobalRegistry = NewRegistry()

// globalRegistryMu protects access to the GlobalRegistry variable itself.
var globalRegistryMu sync.RWMutex

// GetGlobalRegistry returns the global registry instance in a thread-safe
// manner.
func GetGlobalRegistry() *Registry {
	globalRegistryMu.RLock()
	defer globalRegistryMu.RUnlock()
	return GlobalRegistry
}

// SetGlobalRegistry swaps the global registry instance, primarily for tests
// that need to isolate entrypoint behavior.
func SetGlobalRegistry(r *Registry) {
	globalRegistryMu.Lock()
	defer globalRegistryMu.Unlock()
	GlobalRegistry = r
}
