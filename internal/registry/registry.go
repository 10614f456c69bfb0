// Package registry holds the named backend bundles an application instance
// can render with. Backends are registered at construction time and looked
// up by name per run, so the choice of output format is an explicit caller
// decision rather than ambient state.
package registry

import (
	"fmt"
	"sort"

	"github.com/vk/theoremgo/internal/render"
)

// Registry maps backend names to their strategy bundles.
type Registry struct {
	backends map[string]*render.Backend
}

// New creates a registry pre-populated with the built-in backends.
func New() *Registry {
	r := &Registry{backends: make(map[string]*render.Backend)}
	r.Register(render.LaTeX())
	r.Register(render.Markdown())
	return r
}

// Register adds or replaces a backend under its name.
func (r *Registry) Register(b *render.Backend) {
	r.backends[b.Name] = b
}

// Backend looks up a backend by name.
func (r *Registry) Backend(name string) (*render.Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", name, r.Names())
	}
	return b, nil
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
