package overlay

// Builder renders overlay content for a context.
type Builder func(Context) string

// BoundBuilder renders overlay content with access to the owning Model,
// so the content can drive its own handle (typically to remove itself).
type BoundBuilder func(Context, Model) string

// Plan is an immutable description of a future overlay entry: which of
// insert/update/remove its model will expose, how it renders, and the
// presentation flags forwarded to the host surface. The zero value is not
// usable; construct through NewPlan or NewBoundPlan. Optional flags are
// enabled through the With setters, which return modified copies.
type Plan struct {
	removable  bool
	updatable  bool
	insertable bool

	opaque      bool
	retainState bool
	fillSurface bool

	build any // Builder or BoundBuilder
}

// NewPlan returns a plan rendering through a plain builder. The remove
// capability must be stated explicitly; everything else defaults to off.
// A nil builder panics with *RendererError.
func NewPlan(removable bool, build Builder) Plan {
	if build == nil {
		panic(&RendererError{Reason: "nil builder"})
	}
	return Plan{removable: removable, build: build}
}

// NewBoundPlan is NewPlan for builders that need their own handle.
func NewBoundPlan(removable bool, build BoundBuilder) Plan {
	if build == nil {
		panic(&RendererError{Reason: "nil builder"})
	}
	return Plan{removable: removable, build: build}
}

// WithUpdatable returns a copy of p whose models expose Update.
func (p Plan) WithUpdatable() Plan {
	p.updatable = true
	return p
}

// WithInsertable returns a copy of p whose models expose Insert.
func (p Plan) WithInsertable() Plan {
	p.insertable = true
	return p
}

// WithOpaque returns a copy of p whose entries cover everything below.
func (p Plan) WithOpaque() Plan {
	p.opaque = true
	return p
}

// WithRetainState returns a copy of p whose entries keep their built
// content across removal.
func (p Plan) WithRetainState() Plan {
	p.retainState = true
	return p
}

// WithFillSurface returns a copy of p whose entries are offered the whole
// surface rect.
func (p Plan) WithFillSurface() Plan {
	p.fillSurface = true
	return p
}

// Removable reports whether models built from p expose Remove.
func (p Plan) Removable() bool { return p.removable }

// Updatable reports whether models built from p expose Update.
func (p Plan) Updatable() bool { return p.updatable }

// Insertable reports whether models built from p expose Insert.
func (p Plan) Insertable() bool { return p.insertable }

// spec produces the host-facing entry spec for the model the entry will
// belong to. The type switch selects the builder shape; only a zero-value
// Plan can reach the default branch.
func (p Plan) spec(m Model) EntrySpec {
	var build func(Context) string
	switch fn := p.build.(type) {
	case Builder:
		build = fn
	case BoundBuilder:
		build = func(ctx Context) string { return fn(ctx, m) }
	default:
		panic(&RendererError{Reason: "unrecognized builder shape"})
	}

	return EntrySpec{
		Build:       build,
		Opaque:      p.opaque,
		RetainState: p.retainState,
		FillSurface: p.fillSurface,
	}
}
