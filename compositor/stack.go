package compositor

import (
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/stackpane/stackpane/overlay"
)

// Anchor selects the screen corner (or center) where stacked entries are
// laid out.
type Anchor string

// Supported anchors. The empty string behaves like AnchorTopRight.
const (
	AnchorTopRight    Anchor = "top-right"
	AnchorTopLeft     Anchor = "top-left"
	AnchorBottomRight Anchor = "bottom-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorCenter      Anchor = "center"
)

// Options configure entry placement.
type Options struct {
	Anchor  Anchor
	Gap     int // rows between stacked entries
	MarginX int // columns between entries and the screen edge
	MarginY int // rows between the first entry and the screen edge
}

// Stack is a host surface for terminal UIs. It implements
// overlay.Surface; hand it to the screen that owns an overlay.Registry
// and composite its entries over the screen's view each frame.
type Stack struct {
	logger *slog.Logger

	mu      sync.Mutex
	opts    Options
	width   int
	height  int
	entries []*Entry // bottom to top
}

// New creates an empty stack. A nil logger falls back to slog.Default().
func New(opts Options, logger *slog.Logger) *Stack {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stack{logger: logger, opts: opts}
}

// Resize records the canvas size handed to builders. Every entry is
// rebuilt on the next composite since its content may be size-dependent.
func (s *Stack) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	for _, e := range s.entries {
		e.dirty = true
	}
	s.mu.Unlock()
}

// SetOptions replaces the placement options; the next composite uses
// them. Used for live configuration reloads.
func (s *Stack) SetOptions(opts Options) {
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()
}

// Len returns the number of inserted entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// NewEntry implements overlay.Surface.
func (s *Stack) NewEntry(spec overlay.EntrySpec) overlay.Entry {
	return &Entry{
		id:    ulid.Make(),
		stack: s,
		spec:  spec,
		dirty: true,
	}
}

// Insert implements overlay.Surface. A non-nil below splices e
// immediately above the referenced entry; otherwise a non-nil above
// splices e immediately below it; with neither, e goes on top.
func (s *Stack) Insert(e, below, above overlay.Entry) {
	entry, ok := e.(*Entry)
	if !ok || entry.stack != s {
		s.logger.Warn("ignoring insert of entry from another surface")
		return
	}

	s.mu.Lock()
	idx := len(s.entries)
	if b, ok := below.(*Entry); ok && b != nil {
		if i := s.indexLocked(b); i >= 0 {
			idx = i + 1
		}
	} else if a, ok := above.(*Entry); ok && a != nil {
		if i := s.indexLocked(a); i >= 0 {
			idx = i
		}
	}

	s.entries = append(s.entries, nil)
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = entry
	entry.visible = true
	total := len(s.entries)
	s.mu.Unlock()

	s.logger.Debug("inserted entry",
		"id", entry.id.String(),
		"index", idx,
		"entries", total,
	)
}

// remove detaches an entry. Removing an entry that is not inserted is a
// no-op, so a double remove through a lingering handle stays harmless.
func (s *Stack) remove(e *Entry) {
	s.mu.Lock()
	if !e.visible {
		s.mu.Unlock()
		return
	}
	e.visible = false

	if i := s.indexLocked(e); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
	if !e.spec.RetainState {
		e.cache = ""
		e.dirty = true
	}
	total := len(s.entries)
	s.mu.Unlock()

	s.logger.Debug("removed entry",
		"id", e.id.String(),
		"entries", total,
	)
}

// indexLocked returns e's position in the stack, or -1. Caller must hold
// the lock.
func (s *Stack) indexLocked(e *Entry) int {
	for i, cur := range s.entries {
		if cur == e {
			return i
		}
	}
	return -1
}
