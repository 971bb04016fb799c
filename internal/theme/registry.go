package theme

import (
	"io"
	"sync"

	"github.com/ibrahimlogs/folio/internal/canonical"
)

// Renderer turns a canonical content model into presentation output.
type Renderer interface {
	Render(w io.Writer, model canonical.Model) error
}

// Registry maps theme keys to renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[Key]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[Key]Renderer)}
}

// Register installs a renderer for a theme key. Re-registration overwrites.
func (r *Registry) Register(key Key, renderer Renderer) {
	if renderer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[key] = renderer
}

// Dispatch selects the renderer for a key. Unknown or unregistered keys fall
// back to the v1 renderer, matching key resolution's default arm.
func (r *Registry) Dispatch(key Key) Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.renderers[key]; ok {
		return renderer
	}
	return r.renderers[V1]
}
