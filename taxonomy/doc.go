// Package taxonomy implements the class-hierarchy store: OWL classes,
// single-parent subclass edges, and individual type assertions.
//
// Declarations arrive in any order; parent and class references are only
// validated by Finalize. A store that fails finalization is
// non-queryable. After a successful Finalize the store is immutable and
// safe for concurrent readers without locking.
package taxonomy
