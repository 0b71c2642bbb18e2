// FILE: src/internal/core/vars.go
package core

import "sync"

// VariableStore backs ${var:name} template lookups. Mutable over process
// lifetime, read-only during a render. Safe for concurrent reads with
// interleaved writes.
type VariableStore struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewVariableStore creates a store seeded with the given variables.
func NewVariableStore(seed map[string]string) *VariableStore {
	vs := &VariableStore{
		vars: make(map[string]string, len(seed)),
	}
	for k, v := range seed {
		vs.vars[k] = v
	}
	return vs
}

// Get returns the value for name and whether it exists.
func (vs *VariableStore) Get(name string) (string, bool) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	v, ok := vs.vars[name]
	return v, ok
}

// Set adds or replaces a variable.
func (vs *VariableStore) Set(name, value string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.vars[name] = value
}

// Delete removes a variable if present.
func (vs *VariableStore) Delete(name string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	delete(vs.vars, name)
}
