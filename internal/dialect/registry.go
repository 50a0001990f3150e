package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/wlame/mkcommit/internal/lint"
)

// Registry holds dialects by lower-cased name.
// It is filled once at startup and only read afterwards.
type Registry struct {
	mu       sync.RWMutex
	dialects map[string]Dialect
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{dialects: make(map[string]Dialect)}
}

// Register adds d to the registry.
// Registering a second dialect under the same name is a configuration error.
func (r *Registry) Register(d Dialect) error {
	key := strings.ToLower(d.Name())
	if key == "" {
		return &lint.ConfigurationError{Reason: "dialect name is empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.dialects[key]; exists {
		return &lint.ConfigurationError{Reason: fmt.Sprintf("dialect %q is registered twice", d.Name())}
	}
	r.dialects[key] = d
	return nil
}

// Get returns a dialect by name (case insensitive)
func (r *Registry) Get(name string) (Dialect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.dialects[strings.ToLower(name)]
	return d, ok
}

// Lookup is like Get but returns an error listing the known dialects
func (r *Registry) Lookup(name string) (Dialect, error) {
	if d, ok := r.Get(name); ok {
		return d, nil
	}
	return nil, fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(r.List(), ", "))
}

// List returns all registered dialect names (sorted)
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
