// Package vocabulary provides W3C standard vocabulary IRIs shared by the
// taxonomy store, the lexicon binder, and the RDF exporter.
//
// Domain-specific terms live in subpackages: vocabulary/lemon for the
// LEMON/lexinfo lexical model, vocabulary/logistics for the sample
// transport ontology.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDF Schema: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
package vocabulary
