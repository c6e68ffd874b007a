package taxonomy

import (
	"errors"
	"reflect"
	"testing"
)

// buildLogisticsStore declares the transport-domain sample hierarchy
// and finalizes it.
func buildLogisticsStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	decls := []struct{ id, parent string }{
		{"object", ""},
		{"physobj", "object"},
		{"package", "physobj"},
		{"drum", "package"},
		{"vehicle", "physobj"},
		{"truck", "vehicle"},
		{"location", "object"},
		{"city", "location"},
	}
	for _, d := range decls {
		if err := s.AddClass(d.id, d.parent); err != nil {
			t.Fatalf("AddClass(%q, %q): %v", d.id, d.parent, err)
		}
	}
	if err := s.AddIndividual("obj11", "drum"); err != nil {
		t.Fatalf("AddIndividual(obj11): %v", err)
	}
	if err := s.AddIndividual("truck1", "truck"); err != nil {
		t.Fatalf("AddIndividual(truck1): %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return s
}

func TestIsSubclassOfReflexive(t *testing.T) {
	s := buildLogisticsStore(t)

	for _, c := range s.Classes() {
		ok, err := s.IsSubclassOf(c.ID, c.ID)
		if err != nil {
			t.Fatalf("IsSubclassOf(%q, %q): %v", c.ID, c.ID, err)
		}
		if !ok {
			t.Errorf("IsSubclassOf(%q, %q) = false, want true", c.ID, c.ID)
		}
	}
}

func TestIsSubclassOfTransitive(t *testing.T) {
	s := buildLogisticsStore(t)

	// drum ⊑ package and package ⊑ object, so drum ⊑ object.
	for _, pair := range [][2]string{
		{"drum", "package"},
		{"package", "object"},
		{"drum", "object"},
	} {
		ok, err := s.IsSubclassOf(pair[0], pair[1])
		if err != nil {
			t.Fatalf("IsSubclassOf(%q, %q): %v", pair[0], pair[1], err)
		}
		if !ok {
			t.Errorf("IsSubclassOf(%q, %q) = false, want true", pair[0], pair[1])
		}
	}
}

func TestIsSubclassOfUnrelated(t *testing.T) {
	s := buildLogisticsStore(t)

	tests := []struct {
		a, b string
		want bool
	}{
		{"drum", "vehicle", false},
		{"vehicle", "drum", false},
		{"object", "drum", false}, // ancestry is not symmetric
		{"city", "location", true},
	}
	for _, tt := range tests {
		got, err := s.IsSubclassOf(tt.a, tt.b)
		if err != nil {
			t.Fatalf("IsSubclassOf(%q, %q): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("IsSubclassOf(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsSubclassOfUnknownClass(t *testing.T) {
	s := buildLogisticsStore(t)

	if _, err := s.IsSubclassOf("widget", "object"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown subject, got %v", err)
	}
	if _, err := s.IsSubclassOf("drum", "widget"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown ancestor, got %v", err)
	}
}

func TestClassesOf(t *testing.T) {
	s := buildLogisticsStore(t)

	got, err := s.ClassesOf("obj11")
	if err != nil {
		t.Fatalf("ClassesOf(obj11): %v", err)
	}
	want := []string{"drum", "package", "physobj", "object"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClassesOf(obj11) = %v, want %v", got, want)
	}
}

func TestClassesOfUnknownIndividual(t *testing.T) {
	s := buildLogisticsStore(t)

	if _, err := s.ClassesOf("obj99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMultipleParentRejected(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("drum", "package"); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	err := s.AddClass("drum", "vehicle")
	if !errors.Is(err, ErrMultipleParent) {
		t.Errorf("expected ErrMultipleParent, got %v", err)
	}
}

func TestRedeclarationWithoutParentKeepsParent(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("drum", "package"); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	// The flat triple form declares ":drum rdf:type owl:Class" and
	// ":drum rdfs:subClassOf :package" independently, so a bare
	// re-declaration must not clear the parent.
	if err := s.AddClass("drum", ""); err != nil {
		t.Fatalf("re-declare: %v", err)
	}
	if err := s.AddClass("package", ""); err != nil {
		t.Fatalf("AddClass(package): %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	ok, err := s.IsSubclassOf("drum", "package")
	if err != nil || !ok {
		t.Errorf("IsSubclassOf(drum, package) = %v, %v; want true", ok, err)
	}
}

func TestForwardReferenceOrderIndependence(t *testing.T) {
	// Child before parent.
	forward := NewStore()
	if err := forward.AddClass("chair", "package"); err != nil {
		t.Fatalf("AddClass(chair): %v", err)
	}
	if err := forward.AddClass("package", ""); err != nil {
		t.Fatalf("AddClass(package): %v", err)
	}

	// Parent before child.
	backward := NewStore()
	if err := backward.AddClass("package", ""); err != nil {
		t.Fatalf("AddClass(package): %v", err)
	}
	if err := backward.AddClass("chair", "package"); err != nil {
		t.Fatalf("AddClass(chair): %v", err)
	}

	for name, s := range map[string]*Store{"forward": forward, "backward": backward} {
		if err := s.Finalize(); err != nil {
			t.Fatalf("%s Finalize: %v", name, err)
		}
	}
	if !reflect.DeepEqual(forward.Classes(), backward.Classes()) {
		t.Errorf("declaration order changed the finalized store:\nforward:  %v\nbackward: %v",
			forward.Classes(), backward.Classes())
	}
}

func TestFinalizeUnresolvedParent(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("chair", "furniture"); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}
	// A failed finalize leaves the store non-queryable.
	if _, err := s.IsSubclassOf("chair", "chair"); !errors.Is(err, ErrNotFinalized) {
		t.Errorf("expected ErrNotFinalized after failed finalize, got %v", err)
	}
}

func TestFinalizeUnresolvedIndividualClass(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("object", ""); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if err := s.AddIndividual("obj11", "drum"); err != nil {
		t.Fatalf("AddIndividual: %v", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}
}

func TestFinalizeCycle(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("a", "b"); err != nil {
		t.Fatalf("AddClass(a): %v", err)
	}
	if err := s.AddClass("b", "a"); err != nil {
		t.Fatalf("AddClass(b): %v", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}

func TestDuplicateIDAcrossKinds(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("drum", ""); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if err := s.AddIndividual("drum", "object"); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("individual over class: expected ErrDuplicateID, got %v", err)
	}

	s2 := NewStore()
	if err := s2.AddIndividual("obj11", "drum"); err != nil {
		t.Fatalf("AddIndividual: %v", err)
	}
	if err := s2.AddClass("obj11", ""); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("class over individual: expected ErrDuplicateID, got %v", err)
	}
}

func TestIndividualRetypedRejected(t *testing.T) {
	s := NewStore()
	if err := s.AddIndividual("obj11", "drum"); err != nil {
		t.Fatalf("AddIndividual: %v", err)
	}
	if err := s.AddIndividual("obj11", "drum"); err != nil {
		t.Errorf("idempotent re-declaration should succeed, got %v", err)
	}
	if err := s.AddIndividual("obj11", "truck"); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID on conflicting type, got %v", err)
	}
}

func TestMutationAfterFinalize(t *testing.T) {
	s := buildLogisticsStore(t)

	if err := s.AddClass("pallet", "package"); !errors.Is(err, ErrFinalized) {
		t.Errorf("AddClass: expected ErrFinalized, got %v", err)
	}
	if err := s.AddIndividual("obj12", "drum"); !errors.Is(err, ErrFinalized) {
		t.Errorf("AddIndividual: expected ErrFinalized, got %v", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrFinalized) {
		t.Errorf("Finalize: expected ErrFinalized, got %v", err)
	}
}

func TestQueriesBeforeFinalize(t *testing.T) {
	s := NewStore()
	if err := s.AddClass("object", ""); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if _, err := s.IsSubclassOf("object", "object"); !errors.Is(err, ErrNotFinalized) {
		t.Errorf("IsSubclassOf: expected ErrNotFinalized, got %v", err)
	}
	if _, err := s.ClassesOf("obj11"); !errors.Is(err, ErrNotFinalized) {
		t.Errorf("ClassesOf: expected ErrNotFinalized, got %v", err)
	}
}
