package registry

import (
	"sort"
	"sync"
)

// LoaderFunc builds one command's descriptors and registers them into the
// given registry. Loaders for the baked-in set call RegisterDefault; loaders
// for user commands call Register.
type LoaderFunc func(r *Registry) error

// loaderTable is the explicit registration table keyed by command
// identifier. Packages providing commands fill it from their init
// functions, and EnsureLoaded drives it on demand.
var (
	loaderMu    sync.RWMutex
	loaderTable = make(map[string]LoaderFunc)
)

// RegisterLoader adds a loader to the table. The first loader registered for
// an identifier wins, matching the registry's duplicate policy.
func RegisterLoader(identifier string, loader LoaderFunc) {
	if identifier == "" || loader == nil {
		return
	}
	loaderMu.Lock()
	defer loaderMu.Unlock()
	if _, exists := loaderTable[identifier]; exists {
		return
	}
	loaderTable[identifier] = loader
}

// LoaderIdentifiers returns the identifiers currently present in the table,
// sorted for stable diagnostic output.
func LoaderIdentifiers() []string {
	loaderMu.RLock()
	defer loaderMu.RUnlock()
	ids := make([]string, 0, len(loaderTable))
	for id := range loaderTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func lookupLoader(identifier string) (LoaderFunc, bool) {
	loaderMu.RLock()
	defer loaderMu.RUnlock()
	loader, ok := loaderTable[identifier]
	return loader, ok
}
