package lexicon

import (
	"errors"
	"fmt"
)

// Standard error variables for lexicon operations.
var (
	// ErrNotFound is returned for an unknown entry, marker, or
	// placeholder identifier.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when an identifier is already
	// registered as a different lexical entity, or a placeholder is
	// re-bound to a different concept.
	ErrDuplicateID = errors.New("identifier already registered")

	// ErrUnboundArgument is returned when frame resolution reaches a
	// placeholder with no substitution. Use errors.As with
	// *UnboundArgumentError to recover the placeholder name.
	ErrUnboundArgument = errors.New("unbound argument placeholder")

	// ErrUnresolvedReference is returned by Finalize when an argument
	// binding references a concept the taxonomy does not declare.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrFinalized is returned by mutators after a successful Finalize.
	ErrFinalized = errors.New("binder is finalized")

	// ErrNotFinalized is returned by queries before a successful
	// Finalize, including after a failed one.
	ErrNotFinalized = errors.New("binder is not finalized")
)

// UnboundArgumentError names the first placeholder, in pre-order, that
// frame resolution could not substitute.
type UnboundArgumentError struct {
	// Entry is the lexical entry being resolved.
	Entry string

	// Placeholder is the unresolved argument slot.
	Placeholder string
}

// Error implements the error interface.
func (e *UnboundArgumentError) Error() string {
	return fmt.Sprintf("lexicon: entry %q: placeholder %q: %s", e.Entry, e.Placeholder, ErrUnboundArgument)
}

// Unwrap returns ErrUnboundArgument so errors.Is matches.
func (e *UnboundArgumentError) Unwrap() error {
	return ErrUnboundArgument
}
