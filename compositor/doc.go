// Package compositor implements a terminal host surface for overlay
// entries: an ordered layer stack composited over a base view. Entries
// are anchored to a screen corner and stacked with a configurable gap,
// except full-surface entries which cover the whole canvas. Slice order
// is z-order, bottom to top.
package compositor
