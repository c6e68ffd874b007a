package frame

import (
	"errors"
	"fmt"
	"strings"
)

// Kind distinguishes the node variants of a frame tree.
type Kind string

const (
	// KindWord is a concrete leaf word.
	KindWord Kind = "word"

	// KindPlaceholder is a symbolic argument slot awaiting a value.
	KindPlaceholder Kind = "placeholder"

	// KindFrame is an interior node: a head word (its root edge) plus
	// dependents.
	KindFrame Kind = "frame"
)

// Validation errors for frame trees.
var (
	// ErrMalformedFrame is returned when a tree violates the frame
	// shape: a frame node without exactly one root edge, a leaf with
	// an empty value, or an edge to a nil child.
	ErrMalformedFrame = errors.New("malformed frame")
)

// Edge is a labeled connection from a frame node to a child.
type Edge struct {
	Role  Role
	Child *Node
}

// Node is a single node of a frame tree. Leaves carry a Value; frame
// nodes carry Edges in declaration order and leave Value empty.
type Node struct {
	Kind  Kind
	Value string
	Edges []Edge
}

// Word creates a leaf word node.
func Word(v string) *Node {
	return &Node{Kind: KindWord, Value: v}
}

// Placeholder creates a symbolic argument-slot leaf.
func Placeholder(id string) *Node {
	return &Node{Kind: KindPlaceholder, Value: id}
}

// NewFrame creates an interior node from its edges, declaration order
// preserved. The shape is checked by Validate, not here, so loaders can
// build trees incrementally.
func NewFrame(edges ...Edge) *Node {
	return &Node{Kind: KindFrame, Edges: edges}
}

// Validate checks the frame-tree invariants rooted at n: known roles,
// exactly one root edge per frame node, non-empty leaf values, no nil
// children. Construction from values cannot create back-edges, so
// acyclicity holds whenever each node is reachable once; Validate also
// rejects node sharing to keep the graph a tree.
func (n *Node) Validate() error {
	seen := make(map[*Node]bool)
	return n.validate(seen)
}

func (n *Node) validate(seen map[*Node]bool) error {
	if n == nil {
		return fmt.Errorf("frame: nil node: %w", ErrMalformedFrame)
	}
	if seen[n] {
		return fmt.Errorf("frame: node %q appears more than once: %w", n.Value, ErrMalformedFrame)
	}
	seen[n] = true

	switch n.Kind {
	case KindWord, KindPlaceholder:
		if n.Value == "" {
			return fmt.Errorf("frame: empty leaf value: %w", ErrMalformedFrame)
		}
		if len(n.Edges) > 0 {
			return fmt.Errorf("frame: leaf %q has edges: %w", n.Value, ErrMalformedFrame)
		}
		return nil
	case KindFrame:
		roots := 0
		for _, e := range n.Edges {
			if !e.Role.Valid() {
				return fmt.Errorf("frame: edge label %q: %w", e.Role, ErrUnknownRole)
			}
			if e.Role == RoleRoot {
				roots++
			}
			if err := e.Child.validate(seen); err != nil {
				return err
			}
		}
		if roots != 1 {
			return fmt.Errorf("frame: frame node has %d root edges, want 1: %w", roots, ErrMalformedFrame)
		}
		return nil
	default:
		return fmt.Errorf("frame: unknown node kind %q: %w", n.Kind, ErrMalformedFrame)
	}
}

// Head returns the child of the node's root edge, or nil for leaves.
func (n *Node) Head() *Node {
	return n.ChildByRole(RoleRoot)
}

// ChildByRole returns the first child reached by an edge with the given
// role, or nil if none exists.
func (n *Node) ChildByRole(role Role) *Node {
	for _, e := range n.Edges {
		if e.Role == role {
			return e.Child
		}
	}
	return nil
}

// Walk visits the tree in pre-order: the node itself, then each edge's
// child in declaration order. Traversal stops at the first error.
func (n *Node) Walk(fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	if err := fn(n); err != nil {
		return err
	}
	for _, e := range n.Edges {
		if err := e.Child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Value: n.Value}
	if len(n.Edges) > 0 {
		out.Edges = make([]Edge, len(n.Edges))
		for i, e := range n.Edges {
			out.Edges[i] = Edge{Role: e.Role, Child: e.Child.Clone()}
		}
	}
	return out
}

// String flattens the tree's leaves in pre-order, space-separated.
// This is a debugging realization, not grammatical surface order.
func (n *Node) String() string {
	var leaves []string
	_ = n.Walk(func(node *Node) error {
		if node.Kind != KindFrame {
			leaves = append(leaves, node.Value)
		}
		return nil
	})
	return strings.Join(leaves, " ")
}
