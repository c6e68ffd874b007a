package frame

import (
	"errors"
	"fmt"

	"github.com/c360studio/ontolex/vocabulary/lemon"
)

// ErrUnknownRole is returned when an edge label is not one of the
// declared subproperties of the generic edge relation.
var ErrUnknownRole = errors.New("unknown edge role")

// Role is a grammatical-role edge label in a frame tree.
type Role string

// The closed set of edge roles. Each corresponds to a subproperty of
// lemon:edge in the source vocabulary.
const (
	// RoleRoot links a frame node to its head word. Every frame node
	// has exactly one.
	RoleRoot Role = "root"

	// RoleNsubj is the nominal subject.
	RoleNsubj Role = "nsubj"

	// RoleDobj is the direct object.
	RoleDobj Role = "dobj"

	// RoleIobj is the indirect object.
	RoleIobj Role = "iobj"

	// RoleDet is the determiner.
	RoleDet Role = "det"

	// RoleNum is the numeric modifier.
	RoleNum Role = "num"

	// RoleAmod is the adjectival modifier.
	RoleAmod Role = "amod"

	// RolePrep is a prepositional attachment.
	RolePrep Role = "prep"

	// RolePobj is the object of a preposition.
	RolePobj Role = "pobj"
)

var allRoles = map[Role]bool{
	RoleRoot:  true,
	RoleNsubj: true,
	RoleDobj:  true,
	RoleIobj:  true,
	RoleDet:   true,
	RoleNum:   true,
	RoleAmod:  true,
	RolePrep:  true,
	RolePobj:  true,
}

// Roles returns the closed role set in a fixed order, RoleRoot first.
// The exporter uses it to emit the subproperty declarations.
func Roles() []Role {
	return []Role{
		RoleRoot, RoleNsubj, RoleDobj, RoleIobj, RoleDet,
		RoleNum, RoleAmod, RolePrep, RolePobj,
	}
}

// ParseRole converts an edge label string to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !allRoles[r] {
		return "", fmt.Errorf("frame: edge label %q: %w", s, ErrUnknownRole)
	}
	return r, nil
}

// Valid reports whether the role is one of the declared edge roles.
func (r Role) Valid() bool {
	return allRoles[r]
}

// IRI returns the full vocabulary IRI of the role's edge subproperty.
func (r Role) IRI() string {
	return lemon.Namespace + string(r)
}

// String returns the edge label.
func (r Role) String() string {
	return string(r)
}
