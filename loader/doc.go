// Package loader feeds parsed declaration records into the taxonomy
// store and the lexicon binder, and runs the finalization pass that
// turns them into an immutable, queryable Snapshot.
//
// The core stores consume typed records; serialization is this
// package's concern. Records decode from YAML documents, individually
// or via doublestar glob patterns over a source tree. Because both
// stores tolerate forward references, documents can be loaded in any
// order — validation happens once, in Finalize.
package loader
