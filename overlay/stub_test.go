package overlay

// Test doubles for the host surface boundary. They record every call so
// tests can assert exact insert/detach/invalidate accounting.

type stubEntry struct {
	spec        EntrySpec
	removed     int
	invalidated int
}

func (e *stubEntry) Remove()     { e.removed++ }
func (e *stubEntry) Invalidate() { e.invalidated++ }

type insertCall struct {
	entry, below, above Entry
}

type stubSurface struct {
	created []*stubEntry
	inserts []insertCall
}

func (s *stubSurface) NewEntry(spec EntrySpec) Entry {
	e := &stubEntry{spec: spec}
	s.created = append(s.created, e)
	return e
}

func (s *stubSurface) Insert(e, below, above Entry) {
	s.inserts = append(s.inserts, insertCall{entry: e, below: below, above: above})
}

type stubHost struct {
	surface *stubSurface
}

func (h stubHost) Surface() Surface { return h.surface }

type stubContext struct {
	width, height int
}

func (c stubContext) Size() (int, int) { return c.width, c.height }

func newTestRegistry() (*Registry, *stubSurface) {
	surf := &stubSurface{}
	return NewRegistry(stubHost{surface: surf}, nil), surf
}
