package overlay

import (
	"log/slog"
	"sync"
)

// Registry is a per-screen ordered collection of active overlay models.
// Embed one in the screen that owns the surface. Insert is the only path
// allowed to grow the tracked list, and a model's Remove the only path
// allowed to shrink it; insertion order is stacking order.
//
// The convenience helpers in this package resolve on their own
// goroutines, so the tracked list is mutex-guarded.
type Registry struct {
	host   Host
	logger *slog.Logger

	mu      sync.RWMutex
	tracked []Model
}

// NewRegistry creates a registry for the given host. A nil logger falls
// back to slog.Default().
func NewRegistry(host Host, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{host: host, logger: logger}
}

func (r *Registry) surface() Surface {
	return r.host.Surface()
}

// Insert builds a model for plan, inserts its entry relative to the
// optional sibling models (either, both or neither may be nil), tracks
// the model and returns it.
func (r *Registry) Insert(plan Plan, below, above Model) Model {
	var belowEntry, aboveEntry Entry
	if below != nil {
		belowEntry = below.Entry()
	}
	if above != nil {
		aboveEntry = above.Entry()
	}

	m := newModel(r, plan, belowEntry, aboveEntry)
	r.surface().Insert(m.Entry(), belowEntry, aboveEntry)
	r.track(m)

	r.logger.Debug("inserted overlay",
		"removable", plan.removable,
		"updatable", plan.updatable,
		"insertable", plan.insertable,
		"tracked", r.Len(),
	)

	return m
}

// Overlays returns a snapshot copy of the tracked models, in insertion
// order. Mutating the returned slice never affects the registry.
func (r *Registry) Overlays() []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Model, len(r.tracked))
	copy(out, r.tracked)
	return out
}

// Len returns the number of tracked models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tracked)
}

func (r *Registry) track(m Model) {
	r.mu.Lock()
	r.tracked = append(r.tracked, m)
	r.mu.Unlock()
}

func (r *Registry) untrack(m Model) {
	r.mu.Lock()
	for i, t := range r.tracked {
		if t == m {
			r.tracked = append(r.tracked[:i], r.tracked[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
}
