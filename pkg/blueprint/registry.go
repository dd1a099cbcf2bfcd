package blueprint

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry holds named blueprints so type tags can refer to them.
type Registry struct {
	mu         sync.RWMutex
	blueprints map[string]*Blueprint
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{blueprints: make(map[string]*Blueprint)}
}

// DefaultRegistry returns the process-wide registry used when no
// WithRegistry option is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds bp under its name. Names are registered once.
func (r *Registry) Register(bp *Blueprint) error {
	if bp == nil {
		return fmt.Errorf("%w: nil blueprint", ErrInvalidSchema)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blueprints[bp.name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, bp.name)
	}
	r.blueprints[bp.name] = bp
	return nil
}

// Lookup returns the blueprint registered under name.
func (r *Registry) Lookup(name string) (*Blueprint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bp, ok := r.blueprints[name]
	return bp, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.blueprints))
}

// Register adds bp to the default registry.
func Register(bp *Blueprint) error {
	return defaultRegistry.Register(bp)
}

// Lookup finds a blueprint in the default registry.
func Lookup(name string) (*Blueprint, bool) {
	return defaultRegistry.Lookup(name)
}
