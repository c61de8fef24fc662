package overlay

// Entry is a host surface's opaque handle for one inserted overlay
// element. The surface owns all visual state behind it; this package only
// forwards calls.
type Entry interface {
	// Remove detaches the entry from the surface. Guarding against a
	// double remove is the surface's responsibility.
	Remove()

	// Invalidate marks the entry as needing a re-render pass. Safe to
	// call repeatedly.
	Invalidate()
}

// Context is handed to builders at render time by the host surface.
type Context interface {
	// Size reports the current surface dimensions in cells.
	Size() (width, height int)
}

// EntrySpec describes an overlay element to the host surface: how to
// render it, plus the presentation flags carried verbatim from the Plan.
type EntrySpec struct {
	// Build renders the element for the given context. When the plan
	// used a bound builder this is already closed over the owning Model.
	Build func(Context) string

	// Opaque marks the element as fully covering whatever is below it;
	// the surface may skip painting lower entries.
	Opaque bool

	// RetainState keeps the entry's built content alive across removal
	// so a re-insert does not rebuild from scratch.
	RetainState bool

	// FillSurface offers the element the whole surface rect instead of
	// a stacking slot.
	FillSurface bool
}

// Surface is the host framework facility that owns floating visual
// entries anchored above a screen. Implementations decide stacking when
// no siblings are given.
type Surface interface {
	// NewEntry materializes an entry from a spec without showing it.
	NewEntry(spec EntrySpec) Entry

	// Insert shows an entry. A non-nil below places e immediately above
	// the referenced entry; otherwise a non-nil above places e
	// immediately below it; with neither the surface picks the
	// position (topmost).
	Insert(e, below, above Entry)
}

// Host resolves the layer surface for the screen that owns a Registry.
// The screen embedding a Registry typically implements this itself.
type Host interface {
	Surface() Surface
}
