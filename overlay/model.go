package overlay

// Model is the capability-restricted handle returned by Registry.Insert.
// Which of Insert/Update/Remove actually work is fixed at construction by
// the plan's capability triple; the others panic with *CapabilityError.
type Model interface {
	// Insert asks the surface to insert this model's entry again, at the
	// below/above position recorded at construction, then tracks the
	// model in its registry. Not idempotent: inserting an already
	// visible model double-inserts, which is the caller's to avoid.
	Insert()

	// Update marks the entry as needing a re-render pass. Safe to call
	// repeatedly.
	Update()

	// Remove detaches the entry from the surface and stops tracking the
	// model.
	Remove()

	// Entry returns the opaque handle created for this model.
	Entry() Entry

	// Plan returns the plan this model was built from.
	Plan() Plan
}

// core carries the state shared by every variant. The owner pointer
// exists only to reach the surface and the tracked list; it must never be
// the sole thing keeping the registry's screen alive.
type core struct {
	plan  Plan
	owner *Registry
	entry Entry
	self  Model // the concrete variant wrapping this core

	// Sibling handles recorded at construction, consumed by Insert.
	below, above Entry
}

func (c *core) Entry() Entry { return c.entry }
func (c *core) Plan() Plan   { return c.plan }

// Grant mixins, one per capability. The factory attaches the subset the
// plan authorized.

type inserter struct{ c *core }

func (i inserter) Insert() {
	i.c.owner.surface().Insert(i.c.entry, i.c.below, i.c.above)
	i.c.owner.track(i.c.self)
}

type updater struct{ c *core }

func (u updater) Update() {
	u.c.entry.Invalidate()
}

type remover struct{ c *core }

func (r remover) Remove() {
	r.c.entry.Remove()
	r.c.owner.untrack(r.c.self)
}

// Deny mixins for the operations a plan withheld.

type noInsert struct{}

func (noInsert) Insert() { panic(&CapabilityError{Op: "insert"}) }

type noUpdate struct{}

func (noUpdate) Update() { panic(&CapabilityError{Op: "update"}) }

type noRemove struct{}

func (noRemove) Remove() { panic(&CapabilityError{Op: "remove"}) }

// The eight capability subsets, spelled R/U/I for remove, update and
// insert. Each combination appears exactly once. The all-deny variant is
// a valid handle for overlays inserted once and never touched again.

type modelRUI struct {
	*core
	remover
	updater
	inserter
}

type modelRU struct {
	*core
	remover
	updater
	noInsert
}

type modelRI struct {
	*core
	remover
	noUpdate
	inserter
}

type modelUI struct {
	*core
	noRemove
	updater
	inserter
}

type modelR struct {
	*core
	remover
	noUpdate
	noInsert
}

type modelU struct {
	*core
	noRemove
	updater
	noInsert
}

type modelI struct {
	*core
	noRemove
	noUpdate
	inserter
}

type modelInert struct {
	*core
	noRemove
	noUpdate
	noInsert
}

// newModel assembles the variant for plan's capability triple and
// materializes its entry on the owner's surface.
func newModel(owner *Registry, plan Plan, below, above Entry) Model {
	c := &core{plan: plan, owner: owner, below: below, above: above}

	var m Model
	switch [3]bool{plan.removable, plan.updatable, plan.insertable} {
	case [3]bool{true, true, true}:
		m = &modelRUI{core: c, remover: remover{c}, updater: updater{c}, inserter: inserter{c}}
	case [3]bool{true, true, false}:
		m = &modelRU{core: c, remover: remover{c}, updater: updater{c}}
	case [3]bool{true, false, true}:
		m = &modelRI{core: c, remover: remover{c}, inserter: inserter{c}}
	case [3]bool{false, true, true}:
		m = &modelUI{core: c, updater: updater{c}, inserter: inserter{c}}
	case [3]bool{true, false, false}:
		m = &modelR{core: c, remover: remover{c}}
	case [3]bool{false, true, false}:
		m = &modelU{core: c, updater: updater{c}}
	case [3]bool{false, false, true}:
		m = &modelI{core: c, inserter: inserter{c}}
	default:
		m = &modelInert{core: c}
	}

	c.self = m
	c.entry = owner.surface().NewEntry(plan.spec(m))
	return m
}
