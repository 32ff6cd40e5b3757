package backend

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultAlias is the alias a wrapped function uses when none is configured.
const DefaultAlias = "default"

// Registry maps string aliases to live Backend instances. The orchestrator
// resolves the configured alias on every call, so operators may re-register
// a backend at runtime and the next call picks it up.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates a new backend registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend under the given alias, replacing any previous
// registration for that alias.
func (r *Registry) Register(alias string, b Backend) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return ErrEmptyAlias
	}
	if b == nil {
		return ErrNilBackend
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends[alias] = b
	return nil
}

// Resolve returns the backend registered under alias.
func (r *Registry) Resolve(alias string) (Backend, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, ErrEmptyAlias
	}

	r.mu.RLock()
	b, ok := r.backends[alias]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("backend: alias %q is not registered", alias)
	}

	return b, nil
}

// List returns registered aliases in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aliases := make([]string, 0, len(r.backends))
	for alias := range r.backends {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
