// Package export serializes finalized snapshots back to RDF: the class
// forest, individual type assertions, lexical entries with their forms
// and phrase roots, markers, and argument bindings.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/ontolex/lexicon"
	"github.com/c360studio/ontolex/lexicon/frame"
	"github.com/c360studio/ontolex/loader"
	"github.com/c360studio/ontolex/vocabulary"
	"github.com/c360studio/ontolex/vocabulary/lemon"
	"github.com/c360studio/ontolex/vocabulary/logistics"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTurtle, FormatNTriples, FormatJSONLD:
		return Format(s), nil
	default:
		return "", fmt.Errorf("export: unsupported format: %s", s)
	}
}

// Exporter serializes one finalized snapshot.
type Exporter struct {
	snapshot *loader.Snapshot
	prefixes map[string]string

	// ClassBase prefixes bare class identifiers; EntityBase prefixes
	// bare individual, entry, marker, and placeholder identifiers.
	// Identifiers that are already absolute IRIs pass through.
	ClassBase  string
	EntityBase string
}

// NewExporter creates an exporter with the default namespace layout.
func NewExporter(snap *loader.Snapshot) *Exporter {
	return &Exporter{
		snapshot:   snap,
		prefixes:   defaultPrefixes(),
		ClassBase:  logistics.Namespace,
		EntityBase: logistics.EntityNamespace,
	}
}

// defaultPrefixes returns the standard namespace prefixes for export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":     vocabulary.RDFNamespace,
		"rdfs":    vocabulary.RDFSNamespace,
		"owl":     vocabulary.OWLNamespace,
		"xsd":     vocabulary.XSDNamespace,
		"lemon":   lemon.Namespace,
		"lexinfo": lemon.LexinfoNamespace,
		"log":     logistics.Namespace,
		"ent":     logistics.EntityNamespace,
	}
}

// Export serializes the snapshot to the specified format.
func (e *Exporter) Export(format Format) (string, error) {
	triples := e.triples()
	switch format {
	case FormatTurtle:
		return e.toTurtle(triples), nil
	case FormatNTriples:
		return e.toNTriples(triples), nil
	case FormatJSONLD:
		return e.toJSONLD(triples), nil
	default:
		return "", fmt.Errorf("export: unsupported format: %s", format)
	}
}

// term is one RDF term: an IRI, a blank node, or a literal with an
// optional language tag.
type term struct {
	iri   string
	blank string
	lit   string
	lang  string
}

func iriTerm(iri string) term     { return term{iri: iri} }
func blankTerm(id string) term    { return term{blank: id} }
func litTerm(v, lang string) term { return term{lit: v, lang: lang} }

// triple is one (subject, predicate, object) statement. Subjects and
// predicates are IRIs or blank nodes; objects may also be literals.
type triple struct {
	s, p, o term
}

// triples flattens the snapshot into statements in a deterministic
// order: roles, classes, individuals, entries, markers, bindings.
func (e *Exporter) triples() []triple {
	var out []triple
	blanks := 0
	nextBlank := func() term {
		blanks++
		return blankTerm(fmt.Sprintf("b%d", blanks))
	}

	for _, role := range frame.Roles() {
		out = append(out, triple{
			s: iriTerm(role.IRI()),
			p: iriTerm(vocabulary.RdfsSubPropertyOf),
			o: iriTerm(lemon.PropEdge),
		})
	}

	for _, c := range e.snapshot.Taxonomy.Classes() {
		subj := iriTerm(e.classIRI(c.ID))
		out = append(out, triple{s: subj, p: iriTerm(vocabulary.RdfType), o: iriTerm(vocabulary.OwlClass)})
		if c.Parent != "" {
			out = append(out, triple{s: subj, p: iriTerm(vocabulary.RdfsSubClassOf), o: iriTerm(e.classIRI(c.Parent))})
		}
	}

	for _, ind := range e.snapshot.Taxonomy.Individuals() {
		subj := iriTerm(e.entityIRI(ind.ID))
		out = append(out, triple{s: subj, p: iriTerm(vocabulary.RdfType), o: iriTerm(vocabulary.OwlNamedIndividual)})
		out = append(out, triple{s: subj, p: iriTerm(vocabulary.RdfType), o: iriTerm(e.classIRI(ind.Class))})
	}

	for _, entry := range e.snapshot.Lexicon.Entries() {
		subj := iriTerm(e.entityIRI(entry.ID))
		out = append(out, triple{s: subj, p: iriTerm(vocabulary.RdfType), o: iriTerm(lemon.ClassLexicalEntry)})
		out = append(out, e.formTriples(subj, lemon.PropCanonicalForm, entry.CanonicalForm, nextBlank)...)
		out = append(out, triple{
			s: subj,
			p: iriTerm(lemon.PropPartOfSpeech),
			o: iriTerm(lemon.LexinfoNamespace + string(entry.POS)),
		})
		for _, f := range entry.Forms {
			out = append(out, e.formTriples(subj, lemon.PropOtherForm, f, nextBlank)...)
		}
		if entry.PhraseRoot != nil {
			node := nextBlank()
			out = append(out, triple{s: subj, p: iriTerm(lemon.PropPhraseRoot), o: node})
			out = append(out, e.frameTriples(node, entry.PhraseRoot, nextBlank)...)
		}
	}

	for _, m := range e.snapshot.Lexicon.Markers() {
		subj := iriTerm(e.entityIRI(m.ID))
		out = append(out, triple{s: subj, p: iriTerm(vocabulary.RdfType), o: iriTerm(lemon.ClassWord)})
		out = append(out, e.formTriples(subj, lemon.PropCanonicalForm, m.CanonicalForm, nextBlank)...)
	}

	bindings := e.snapshot.Lexicon.Bindings()
	for _, placeholder := range sortedKeys(bindings) {
		out = append(out, triple{
			s: iriTerm(e.entityIRI(placeholder)),
			p: iriTerm(lemon.PropSemArg),
			o: iriTerm(e.classIRI(bindings[placeholder])),
		})
	}

	return out
}

// formTriples emits a blank Form node with its written representation.
func (e *Exporter) formTriples(subj term, prop string, f lexicon.Form, nextBlank func() term) []triple {
	node := nextBlank()
	out := []triple{
		{s: subj, p: iriTerm(prop), o: node},
		{s: node, p: iriTerm(lemon.PropWrittenRep), o: litTerm(f.Written, f.Language)},
	}
	if number, ok := f.Features[lexicon.FeatureNumber]; ok {
		out = append(out, triple{s: node, p: iriTerm(lemon.PropNumber), o: iriTerm(lemon.LexinfoNamespace + number)})
	}
	return out
}

// frameTriples emits a frame tree rooted at the given blank node. Leaf
// words become writtenRep literals; placeholders become entity IRIs so
// bindings can reference them.
func (e *Exporter) frameTriples(node term, n *frame.Node, nextBlank func() term) []triple {
	var out []triple
	for _, edge := range n.Edges {
		child := edge.Child
		switch child.Kind {
		case frame.KindWord:
			out = append(out, triple{s: node, p: iriTerm(edge.Role.IRI()), o: litTerm(child.Value, "")})
		case frame.KindPlaceholder:
			out = append(out, triple{s: node, p: iriTerm(edge.Role.IRI()), o: iriTerm(e.entityIRI(child.Value))})
		case frame.KindFrame:
			sub := nextBlank()
			out = append(out, triple{s: node, p: iriTerm(edge.Role.IRI()), o: sub})
			out = append(out, e.frameTriples(sub, child, nextBlank)...)
		}
	}
	return out
}

func (e *Exporter) classIRI(id string) string {
	if isAbsoluteIRI(id) {
		return id
	}
	return e.ClassBase + id
}

func (e *Exporter) entityIRI(id string) string {
	if isAbsoluteIRI(id) {
		return id
	}
	return e.EntityBase + id
}

func isAbsoluteIRI(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
