package compositor

import (
	"github.com/oklog/ulid/v2"

	"github.com/stackpane/stackpane/overlay"
)

// Entry is one layer in a Stack. It implements overlay.Entry; all fields
// are guarded by the owning stack's mutex.
type Entry struct {
	id    ulid.ULID
	stack *Stack
	spec  overlay.EntrySpec

	visible bool
	dirty   bool
	cache   string // last built content, valid while !dirty
}

// ID returns the entry's identifier, useful for log correlation.
func (e *Entry) ID() string {
	return e.id.String()
}

// Remove implements overlay.Entry.
func (e *Entry) Remove() {
	e.stack.remove(e)
}

// Invalidate implements overlay.Entry: the next composite rebuilds the
// entry's content.
func (e *Entry) Invalidate() {
	e.stack.mu.Lock()
	e.dirty = true
	e.stack.mu.Unlock()
}

// render returns the entry's content, rebuilding it when invalidated.
// The builder runs outside the stack lock so bound builders may call
// back into their own handle.
func (e *Entry) render(ctx overlay.Context) string {
	e.stack.mu.Lock()
	if !e.dirty {
		out := e.cache
		e.stack.mu.Unlock()
		return out
	}
	e.stack.mu.Unlock()

	out := e.spec.Build(ctx)

	e.stack.mu.Lock()
	e.cache = out
	e.dirty = false
	e.stack.mu.Unlock()
	return out
}

// renderContext implements overlay.Context for a fixed canvas size.
type renderContext struct {
	width, height int
}

func (c renderContext) Size() (int, int) {
	return c.width, c.height
}
