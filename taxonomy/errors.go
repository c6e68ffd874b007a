package taxonomy

import "errors"

// Standard error variables for taxonomy operations. All are returned
// synchronously by the operation that detected them; none are transient.
var (
	// ErrDuplicateID is returned when an identifier is already
	// registered as a different entity kind.
	ErrDuplicateID = errors.New("identifier already registered as a different entity kind")

	// ErrMultipleParent is returned when a class is assigned a second,
	// conflicting parent. Silent overwrite would corrupt ancestry
	// queries, so the conflict is rejected at declaration time.
	ErrMultipleParent = errors.New("class already has a different parent")

	// ErrUnresolvedReference is returned by Finalize when a declared
	// parent or individual type was never registered.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCycle is returned by Finalize when the subclass relation is
	// not a forest. Rejecting it bounds every ancestor walk.
	ErrCycle = errors.New("subclass cycle detected")

	// ErrNotFound is returned by queries for an unknown identifier.
	ErrNotFound = errors.New("not found")

	// ErrFinalized is returned by mutators after a successful Finalize.
	ErrFinalized = errors.New("store is finalized")

	// ErrNotFinalized is returned by queries before a successful
	// Finalize, including after a failed one. A failed load is
	// all-or-nothing: no partial index is exposed.
	ErrNotFinalized = errors.New("store is not finalized")
)
