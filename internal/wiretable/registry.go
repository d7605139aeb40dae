package wiretable

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownTable is returned when a table name (typically decoded from
// a sync key) does not resolve to an open store.
var ErrUnknownTable = errors.New("unknown table")

// Registry tracks the open wire tables by name. Sync keys carry table
// names, so every table a curve may reference must be registered here.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]Store
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]Store),
	}
}

// Add registers a store under its name, replacing any previous store
// with the same name.
func (r *Registry) Add(st Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.stores[st.Name()]; !exists {
		r.order = append(r.order, st.Name())
	}
	r.stores[st.Name()] = st
}

// Lookup resolves a table name to its open store.
func (r *Registry) Lookup(name string) (Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.stores[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return st, nil
}

// Names returns the registered table names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
