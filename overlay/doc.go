// Package overlay wraps a host layer surface behind capability-typed
// handles. A Plan describes what a future overlay entry may do and how it
// renders; inserting it through a Registry yields a Model that exposes
// exactly the operations the plan authorized. Calling anything else is a
// programming error and panics immediately, so misuse surfaces during
// development instead of producing inconsistent visual state.
package overlay
