package lexicon

import (
	"fmt"
	"sort"

	"github.com/c360studio/ontolex/lexicon/frame"
	"github.com/c360studio/ontolex/taxonomy"
)

// Binder stores lexical entries and resolves frame argument
// placeholders against the taxonomy.
//
// Lifecycle mirrors the taxonomy store: declarations in any order,
// then a Finalize pass that validates concept references and freezes
// every entry. A failed Finalize leaves the binder non-queryable.
type Binder struct {
	taxonomy  *taxonomy.Store
	entries   map[string]*Entry
	markers   map[string]*Marker
	bindings  map[string]string // placeholder ID → concept IRI
	finalized bool
}

// NewBinder creates an empty binder over the given taxonomy store.
func NewBinder(ts *taxonomy.Store) *Binder {
	return &Binder{
		taxonomy: ts,
		entries:  make(map[string]*Entry),
		markers:  make(map[string]*Marker),
		bindings: make(map[string]string),
	}
}

// AddEntry registers a lexical entry. The canonical form is stored
// verbatim with its language tag ("en" when untagged). A non-nil
// phrase root is shape-checked immediately: edge labels must come from
// the declared role set and the frame graph must be a tree.
func (b *Binder) AddEntry(id string, canonical Form, pos PartOfSpeech, root *frame.Node) error {
	if b.finalized {
		return ErrFinalized
	}
	if id == "" {
		return fmt.Errorf("lexicon: entry ID must not be empty")
	}
	if canonical.Written == "" {
		return fmt.Errorf("lexicon: entry %q: canonical form must not be empty", id)
	}
	if !pos.Valid() {
		return fmt.Errorf("lexicon: entry %q: part of speech %q: %w", id, pos, ErrUnknownPartOfSpeech)
	}
	if _, ok := b.markers[id]; ok {
		return fmt.Errorf("lexicon: entry %q: %w", id, ErrDuplicateID)
	}
	if _, ok := b.entries[id]; ok {
		return fmt.Errorf("lexicon: entry %q: %w", id, ErrDuplicateID)
	}
	if root != nil {
		if err := root.Validate(); err != nil {
			return fmt.Errorf("lexicon: entry %q: %w", id, err)
		}
	}

	b.entries[id] = &Entry{
		ID:            id,
		CanonicalForm: canonical.normalize(),
		POS:           pos,
		PhraseRoot:    root,
	}
	return nil
}

// AddMarker registers a closed-class function word.
func (b *Binder) AddMarker(id string, canonical Form) error {
	if b.finalized {
		return ErrFinalized
	}
	if id == "" {
		return fmt.Errorf("lexicon: marker ID must not be empty")
	}
	if canonical.Written == "" {
		return fmt.Errorf("lexicon: marker %q: canonical form must not be empty", id)
	}
	if _, ok := b.entries[id]; ok {
		return fmt.Errorf("lexicon: marker %q: %w", id, ErrDuplicateID)
	}
	if _, ok := b.markers[id]; ok {
		return fmt.Errorf("lexicon: marker %q: %w", id, ErrDuplicateID)
	}
	b.markers[id] = &Marker{ID: id, CanonicalForm: canonical.normalize()}
	return nil
}

// AddForm attaches an additional inflected form to an existing entry.
func (b *Binder) AddForm(entryID string, form Form) error {
	if b.finalized {
		return ErrFinalized
	}
	entry, ok := b.entries[entryID]
	if !ok {
		return fmt.Errorf("lexicon: entry %q: %w", entryID, ErrNotFound)
	}
	if form.Written == "" {
		return fmt.Errorf("lexicon: entry %q: form must not be empty", entryID)
	}
	entry.Forms = append(entry.Forms, form.normalize())
	return nil
}

// BindArgument associates a frame placeholder with the taxonomy concept
// it stands for. Binding is late: the placeholder may not yet appear in
// any declared frame, and the concept is only checked at Finalize.
// Re-binding to a different concept is rejected.
func (b *Binder) BindArgument(placeholderID, concept string) error {
	if b.finalized {
		return ErrFinalized
	}
	if placeholderID == "" || concept == "" {
		return fmt.Errorf("lexicon: placeholder and concept must not be empty")
	}
	if existing, ok := b.bindings[placeholderID]; ok && existing != concept {
		return fmt.Errorf("lexicon: placeholder %q bound to %q, cannot bind %q: %w",
			placeholderID, existing, concept, ErrDuplicateID)
	}
	b.bindings[placeholderID] = concept
	return nil
}

// Finalize validates argument bindings against the taxonomy and
// freezes the binder. The taxonomy must already be finalized. On
// failure the binder stays non-queryable.
func (b *Binder) Finalize() error {
	if b.finalized {
		return ErrFinalized
	}
	if !b.taxonomy.Finalized() {
		return fmt.Errorf("lexicon: taxonomy must finalize first: %w", taxonomy.ErrNotFinalized)
	}
	for _, placeholder := range b.sortedBindingIDs() {
		concept := b.bindings[placeholder]
		if !b.taxonomy.HasClass(concept) {
			return fmt.Errorf("lexicon: placeholder %q references missing concept %q: %w",
				placeholder, concept, ErrUnresolvedReference)
		}
	}
	b.finalized = true
	return nil
}

// Finalized reports whether the binder has been successfully finalized.
func (b *Binder) Finalized() bool {
	return b.finalized
}

// Entry returns a copy of the named entry.
func (b *Binder) Entry(id string) (Entry, error) {
	if !b.finalized {
		return Entry{}, ErrNotFinalized
	}
	entry, ok := b.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("lexicon: entry %q: %w", id, ErrNotFound)
	}
	return entry.clone(), nil
}

// Binding returns the concept a placeholder is bound to.
func (b *Binder) Binding(placeholderID string) (string, error) {
	if !b.finalized {
		return "", ErrNotFinalized
	}
	concept, ok := b.bindings[placeholderID]
	if !ok {
		return "", fmt.Errorf("lexicon: placeholder %q: %w", placeholderID, ErrNotFound)
	}
	return concept, nil
}

// ResolveFrame produces a fully-substituted copy of an entry's phrase
// root. The walk is deterministic pre-order (root edge first, then
// edges in declaration order); every placeholder leaf must have a
// substitution. The first placeholder without one aborts resolution
// with an UnboundArgumentError naming it. The stored frame is never
// mutated.
func (b *Binder) ResolveFrame(entryID string, subs map[string]string) (*frame.Node, error) {
	if !b.finalized {
		return nil, ErrNotFinalized
	}
	entry, ok := b.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("lexicon: entry %q: %w", entryID, ErrNotFound)
	}
	if entry.PhraseRoot == nil {
		return nil, fmt.Errorf("lexicon: entry %q has no phrase root: %w", entryID, ErrNotFound)
	}

	resolved := entry.PhraseRoot.Clone()
	err := resolved.Walk(func(n *frame.Node) error {
		if n.Kind != frame.KindPlaceholder {
			return nil
		}
		value, ok := subs[n.Value]
		if !ok {
			return &UnboundArgumentError{Entry: entryID, Placeholder: n.Value}
		}
		n.Kind = frame.KindWord
		n.Value = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// Entries returns all entries sorted by ID. Used by the exporter.
func (b *Binder) Entries() []Entry {
	ids := make([]string, 0, len(b.entries))
	for id := range b.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.entries[id].clone())
	}
	return out
}

// Markers returns all markers sorted by ID.
func (b *Binder) Markers() []Marker {
	ids := make([]string, 0, len(b.markers))
	for id := range b.markers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Marker, 0, len(ids))
	for _, id := range ids {
		m := *b.markers[id]
		m.CanonicalForm = m.CanonicalForm.clone()
		out = append(out, m)
	}
	return out
}

// Bindings returns a copy of the placeholder to concept map.
func (b *Binder) Bindings() map[string]string {
	out := make(map[string]string, len(b.bindings))
	for k, v := range b.bindings {
		out[k] = v
	}
	return out
}

func (b *Binder) sortedBindingIDs() []string {
	ids := make([]string, 0, len(b.bindings))
	for id := range b.bindings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
