package taxonomy

import (
	"errors"
	"fmt"
	"sort"
)

// Class is a category in the subclass forest.
type Class struct {
	// ID is the class identifier (URI-like string).
	ID string

	// Parent is the single parent class ID, empty for root classes.
	Parent string
}

// Individual is a concrete instance with exactly one direct type.
type Individual struct {
	// ID is the individual identifier.
	ID string

	// Class is the direct (most specific) type of the individual.
	Class string
}

// Store holds the class hierarchy and individual type assertions.
//
// The zero value is not usable; create stores with NewStore. Mutators
// may be called in any order until Finalize; queries are only available
// after a successful Finalize.
type Store struct {
	classes     map[string]*Class
	individuals map[string]*Individual
	finalized   bool
}

// NewStore creates an empty taxonomy store.
func NewStore() *Store {
	return &Store{
		classes:     make(map[string]*Class),
		individuals: make(map[string]*Individual),
	}
}

// AddClass registers a class, optionally with a parent. An empty parent
// declares a root class. The parent need not be registered yet;
// Finalize validates the reference.
//
// Re-declaring a class is allowed as long as the parent does not
// conflict: a second declaration with a different parent fails with
// ErrMultipleParent, a declaration without a parent never clears an
// existing one.
func (s *Store) AddClass(id, parent string) error {
	if s.finalized {
		return ErrFinalized
	}
	if id == "" {
		return fmt.Errorf("taxonomy: class ID must not be empty")
	}
	if _, ok := s.individuals[id]; ok {
		return fmt.Errorf("taxonomy: class %q: %w", id, ErrDuplicateID)
	}

	existing, ok := s.classes[id]
	if !ok {
		s.classes[id] = &Class{ID: id, Parent: parent}
		return nil
	}
	if parent == "" || parent == existing.Parent {
		return nil
	}
	if existing.Parent == "" {
		existing.Parent = parent
		return nil
	}
	return fmt.Errorf("taxonomy: class %q has parent %q, cannot assign %q: %w",
		id, existing.Parent, parent, ErrMultipleParent)
}

// AddIndividual registers an individual's direct type. The class need
// not be registered yet; Finalize validates the reference.
func (s *Store) AddIndividual(id, classID string) error {
	if s.finalized {
		return ErrFinalized
	}
	if id == "" {
		return fmt.Errorf("taxonomy: individual ID must not be empty")
	}
	if classID == "" {
		return fmt.Errorf("taxonomy: individual %q: class ID must not be empty", id)
	}
	if _, ok := s.classes[id]; ok {
		return fmt.Errorf("taxonomy: individual %q: %w", id, ErrDuplicateID)
	}

	existing, ok := s.individuals[id]
	if !ok {
		s.individuals[id] = &Individual{ID: id, Class: classID}
		return nil
	}
	if existing.Class == classID {
		return nil
	}
	return fmt.Errorf("taxonomy: individual %q already typed as %q, cannot assign %q: %w",
		id, existing.Class, classID, ErrDuplicateID)
}

// Finalize resolves all deferred references and freezes the store.
// Every declared parent and individual type must exist, and the
// subclass relation must be a forest. On failure the store stays
// non-queryable; callers must treat the load as all-or-nothing.
func (s *Store) Finalize() error {
	if s.finalized {
		return ErrFinalized
	}

	var errs []error
	for _, id := range s.sortedClassIDs() {
		c := s.classes[id]
		if c.Parent == "" {
			continue
		}
		if _, ok := s.classes[c.Parent]; !ok {
			errs = append(errs, fmt.Errorf("taxonomy: class %q references missing parent %q: %w",
				c.ID, c.Parent, ErrUnresolvedReference))
		}
	}
	for _, id := range s.sortedIndividualIDs() {
		ind := s.individuals[id]
		if _, ok := s.classes[ind.Class]; !ok {
			errs = append(errs, fmt.Errorf("taxonomy: individual %q references missing class %q: %w",
				ind.ID, ind.Class, ErrUnresolvedReference))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, id := range s.sortedClassIDs() {
		if err := s.checkCycle(id); err != nil {
			return err
		}
	}

	s.finalized = true
	return nil
}

// checkCycle walks the parent chain from id. The walk is bounded by the
// class count, so a cycle is detected without unbounded recursion.
func (s *Store) checkCycle(id string) error {
	seen := make(map[string]bool)
	for cur := id; cur != ""; {
		if seen[cur] {
			return fmt.Errorf("taxonomy: class %q participates in a cycle: %w", cur, ErrCycle)
		}
		seen[cur] = true
		cur = s.classes[cur].Parent
	}
	return nil
}

// Finalized reports whether the store has been successfully finalized.
func (s *Store) Finalized() bool {
	return s.finalized
}

// HasClass reports whether a class is registered. Available before
// finalization so the lexicon binder can validate concept bindings.
func (s *Store) HasClass(id string) bool {
	_, ok := s.classes[id]
	return ok
}

// IsSubclassOf reports whether b equals a or is a transitive ancestor
// of a in the subclass forest. The walk is O(depth).
func (s *Store) IsSubclassOf(a, b string) (bool, error) {
	if !s.finalized {
		return false, ErrNotFinalized
	}
	if _, ok := s.classes[a]; !ok {
		return false, fmt.Errorf("taxonomy: class %q: %w", a, ErrNotFound)
	}
	if _, ok := s.classes[b]; !ok {
		return false, fmt.Errorf("taxonomy: class %q: %w", b, ErrNotFound)
	}
	for cur := a; cur != ""; cur = s.classes[cur].Parent {
		if cur == b {
			return true, nil
		}
	}
	return false, nil
}

// ClassesOf returns the classes of an individual from its direct type
// up through every transitive ancestor, most specific first.
func (s *Store) ClassesOf(individualID string) ([]string, error) {
	if !s.finalized {
		return nil, ErrNotFinalized
	}
	ind, ok := s.individuals[individualID]
	if !ok {
		return nil, fmt.Errorf("taxonomy: individual %q: %w", individualID, ErrNotFound)
	}
	var chain []string
	for cur := ind.Class; cur != ""; cur = s.classes[cur].Parent {
		chain = append(chain, cur)
	}
	return chain, nil
}

// Classes returns all registered classes sorted by ID. Used by the
// exporter and the HTTP status endpoint.
func (s *Store) Classes() []Class {
	out := make([]Class, 0, len(s.classes))
	for _, id := range s.sortedClassIDs() {
		out = append(out, *s.classes[id])
	}
	return out
}

// Individuals returns all registered individuals sorted by ID.
func (s *Store) Individuals() []Individual {
	out := make([]Individual, 0, len(s.individuals))
	for _, id := range s.sortedIndividualIDs() {
		out = append(out, *s.individuals[id])
	}
	return out
}

func (s *Store) sortedClassIDs() []string {
	ids := make([]string, 0, len(s.classes))
	for id := range s.classes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) sortedIndividualIDs() []string {
	ids := make([]string, 0, len(s.individuals))
	for id := range s.individuals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
