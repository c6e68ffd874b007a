// Package frame models phrase-root syntactic frames: trees of head
// words connected by labeled grammatical-role edges.
//
// The source data declares the role labels (root, nsubj, dobj, ...) as
// subproperties of the generic lemon:edge relation. The domain has a
// fixed, small set of roles, so the package models them as a closed
// enumeration instead of an open property hierarchy.
//
// Frames are trees: every frame node carries exactly one root edge to
// its head, plus any number of dependent edges in declaration order.
// Traversal is deterministic pre-order, root edge first.
package frame
