// Package lexicon implements the lexicon binder: LEMON lexical entries,
// their inflected forms, closed-class markers, and the late bindings
// that tie frame argument placeholders to taxonomy concepts.
//
// The binder depends on a taxonomy.Store. Like the taxonomy, it accepts
// declarations in any order, validates references at Finalize, and is
// immutable and safe for concurrent readers afterwards.
package lexicon
