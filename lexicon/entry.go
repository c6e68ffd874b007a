package lexicon

import (
	"errors"
	"fmt"

	"github.com/c360studio/ontolex/lexicon/frame"
)

// DefaultLanguage is the language tag applied to forms that do not
// carry one. The source lexicon is English-only.
const DefaultLanguage = "en"

// PartOfSpeech is the grammatical category of a lexical entry.
type PartOfSpeech string

// The fixed part-of-speech enumeration from the lexinfo vocabulary, as
// far as the domain uses it.
const (
	POSNoun        PartOfSpeech = "noun"
	POSVerb        PartOfSpeech = "verb"
	POSAdjective   PartOfSpeech = "adjective"
	POSAdverb      PartOfSpeech = "adverb"
	POSPreposition PartOfSpeech = "preposition"
	POSDeterminer  PartOfSpeech = "determiner"
)

var allPOS = map[PartOfSpeech]bool{
	POSNoun:        true,
	POSVerb:        true,
	POSAdjective:   true,
	POSAdverb:      true,
	POSPreposition: true,
	POSDeterminer:  true,
}

// ErrUnknownPartOfSpeech is returned for a tag outside the enumeration.
var ErrUnknownPartOfSpeech = errors.New("unknown part of speech")

// ParsePartOfSpeech converts a lexinfo tag to a PartOfSpeech.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	p := PartOfSpeech(s)
	if !allPOS[p] {
		return "", fmt.Errorf("lexicon: part of speech %q: %w", s, ErrUnknownPartOfSpeech)
	}
	return p, nil
}

// Valid reports whether the tag is in the enumeration.
func (p PartOfSpeech) Valid() bool {
	return allPOS[p]
}

// Feature keys for form feature mappings.
const (
	// FeatureNumber is grammatical number: "singular" or "plural".
	FeatureNumber = "number"
)

// Form is a written realization of an entry, tagged with a language
// code and optional grammatical features.
type Form struct {
	// Written is the surface string, stored verbatim.
	Written string

	// Language is the BCP-47 language tag, DefaultLanguage if empty.
	Language string

	// Features carries grammatical tags, e.g. {number: plural}.
	Features map[string]string
}

// normalize fills in the default language tag.
func (f Form) normalize() Form {
	if f.Language == "" {
		f.Language = DefaultLanguage
	}
	return f
}

// clone returns a copy whose feature map is detached from the receiver.
func (f Form) clone() Form {
	if f.Features != nil {
		features := make(map[string]string, len(f.Features))
		for k, v := range f.Features {
			features[k] = v
		}
		f.Features = features
	}
	return f
}

// Entry is a lexical entry: a canonical form, optional additional
// inflected forms, a part-of-speech tag, and an optional phrase-root
// syntactic frame.
type Entry struct {
	ID            string
	CanonicalForm Form
	POS           PartOfSpeech
	PhraseRoot    *frame.Node
	Forms         []Form
}

// clone returns a copy sharing no mutable state with the stored entry,
// so callers cannot reach the finalized store through it.
func (e Entry) clone() Entry {
	e.CanonicalForm = e.CanonicalForm.clone()
	e.PhraseRoot = e.PhraseRoot.Clone()
	if e.Forms != nil {
		forms := make([]Form, len(e.Forms))
		for i, f := range e.Forms {
			forms[i] = f.clone()
		}
		e.Forms = forms
	}
	return e
}

// Marker is a closed-class function word (a preposition) with a
// canonical form only. Markers decorate dependency edges in full
// sentence realization; the binder just stores them.
type Marker struct {
	ID            string
	CanonicalForm Form
}
