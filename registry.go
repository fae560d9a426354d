package graphforge

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the explicit set of already-compiled modules consulted by
// set_import_types. A module must be fully compiled before registration;
// during compilation the registry is only read, so independent modules may
// compile in parallel against one registry.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Schema)}
}

// Register adds a compiled schema under its module name.
func (r *Registry) Register(s *Schema) error {
	if s == nil || s.Module == "" {
		return fmt.Errorf("register: schema must carry a module name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.modules[s.Module]; exists {
		return fmt.Errorf("register: module %q already registered", s.Module)
	}
	r.modules[s.Module] = s
	return nil
}

// Lookup returns the compiled schema for a module name.
func (r *Registry) Lookup(module string) (*Schema, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.modules[module]
	return s, ok
}

// Modules returns the registered module names in lexical order.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
