// Package lemon provides vocabulary IRIs for the LEMON lexical model and
// the lexinfo grammatical annotations used by the lexicon binder.
//
// LEMON (LExicon Model for ONtologies) ties lexical entries — written
// forms, part-of-speech tags, syntactic frames — to ontology concepts.
// The lexicon binder stores these entries and resolves their argument
// placeholders against the taxonomy store.
//
// References:
// - LEMON: https://lemon-model.net/lemon
// - lexinfo: https://lexinfo.net/ontology/2.0/lexinfo
package lemon
