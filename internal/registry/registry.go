// Package registry provides the process-wide store of command descriptors:
// registration with a first-wins duplicate policy, case-sensitive lookup, a
// toggle for the baked-in default command set, and an explicit loader table
// that replaces lazy load-triggered self-registration.
package registry

import (
	"sort"
	"sync"

	charmlog "github.com/charmbracelet/log"

	"conshell/internal/logger"
	"conshell/pkg/contypes"
)

// Registry maps command names to descriptors. All mutation and lookup is
// mutex-serialized so concurrent EnsureLoaded calls are race-free.
type Registry struct {
	mu              sync.RWMutex
	commands        map[string]*contypes.CommandDescriptor
	defaults        map[string]*contypes.CommandDescriptor
	defaultsEnabled bool
	loaded          map[string]bool
	log             *charmlog.Logger
}

// NewRegistry creates an empty registry with the default command set
// enabled. Tests construct a fresh registry each to avoid cross-test
// leakage.
func NewRegistry() *Registry {
	return &Registry{
		commands:        make(map[string]*contypes.CommandDescriptor),
		defaults:        make(map[string]*contypes.CommandDescriptor),
		defaultsEnabled: true,
		loaded:          make(map[string]bool),
		log:             logger.ComponentLogger("registry"),
	}
}

// Register stores a descriptor under its name. The first registration for a
// name wins; later duplicates are silently ignored and no error is
// surfaced.
func (r *Registry) Register(d *contypes.CommandDescriptor) {
	if d == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[d.Name()]; exists {
		r.log.Debug("Ignoring duplicate command registration", "command", d.Name())
		return
	}
	r.commands[d.Name()] = d
}

// RegisterDefault stores a descriptor in the baked-in default set. Defaults
// participate in lookup only while the default set is enabled; an explicit
// registration of the same name always shadows the default.
func (r *Registry) RegisterDefault(d *contypes.CommandDescriptor) {
	if d == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defaults[d.Name()]; exists {
		r.log.Debug("Ignoring duplicate default command registration", "command", d.Name())
		return
	}
	r.defaults[d.Name()] = d
}

// Lookup resolves a command name with a case-sensitive exact match.
// Explicit registrations win over the default set.
func (r *Registry) Lookup(name string) (*contypes.CommandDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.commands[name]; ok {
		return d, true
	}
	if r.defaultsEnabled {
		if d, ok := r.defaults[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// Commands returns all descriptors visible to lookup, sorted by name.
func (r *Registry) Commands() []*contypes.CommandDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool, len(r.commands)+len(r.defaults))
	var all []*contypes.CommandDescriptor
	for name, d := range r.commands {
		seen[name] = true
		all = append(all, d)
	}
	if r.defaultsEnabled {
		for name, d := range r.defaults {
			if !seen[name] {
				all = append(all, d)
			}
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

// SetDefaultCommandsEnabled toggles whether the baked-in default command set
// participates in lookup. The toggle affects all subsequent lookups and
// dispatches until changed again.
func (r *Registry) SetDefaultCommandsEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultsEnabled = enabled
}

// DefaultCommandsEnabled reports the current toggle state.
func (r *Registry) DefaultCommandsEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultsEnabled
}

// EnsureLoaded runs the registered loader for each identifier that has not
// been loaded into this registry yet. A missing or failing loader is fatal
// to that identifier only: it is logged and the rest of the batch proceeds.
func (r *Registry) EnsureLoaded(identifiers ...string) {
	for _, id := range identifiers {
		r.mu.Lock()
		alreadyLoaded := r.loaded[id]
		r.mu.Unlock()
		if alreadyLoaded {
			continue
		}

		loader, ok := lookupLoader(id)
		if !ok {
			r.log.Error("No loader registered for command identifier", "identifier", id)
			continue
		}
		if err := loader(r); err != nil {
			r.log.Error("Command loader failed", "identifier", id, "error", err)
			continue
		}

		r.mu.Lock()
		r.loaded[id] = true
		r.mu.Unlock()
	}
}
