package loader

import (
	"fmt"

	"github.com/c360studio/ontolex/lexicon/frame"
)

// Document is one declaration file: a batch of triple-like records
// grouped by entity pattern. Every section is optional.
type Document struct {
	Classes     []ClassRecord      `yaml:"classes,omitempty"`
	Individuals []IndividualRecord `yaml:"individuals,omitempty"`
	Entries     []EntryRecord      `yaml:"entries,omitempty"`
	Forms       []FormRecord       `yaml:"forms,omitempty"`
	Markers     []MarkerRecord     `yaml:"markers,omitempty"`
	Bindings    []BindingRecord    `yaml:"bindings,omitempty"`
}

// ClassRecord declares an OWL class, optionally with its parent
// (rdf:type owl:Class + rdfs:subClassOf).
type ClassRecord struct {
	ID     string `yaml:"id"`
	Parent string `yaml:"parent,omitempty"`
}

// IndividualRecord declares an individual's direct type (rdf:type).
type IndividualRecord struct {
	ID    string `yaml:"id"`
	Class string `yaml:"class"`
}

// EntryRecord declares a lexical entry (lemon:canonicalForm,
// lexinfo:partOfSpeech, lemon:phraseRoot).
type EntryRecord struct {
	ID        string     `yaml:"id"`
	Canonical string     `yaml:"canonical"`
	Language  string     `yaml:"language,omitempty"`
	POS       string     `yaml:"pos"`
	Frame     *FrameSpec `yaml:"frame,omitempty"`
}

// FormRecord attaches an additional inflected form to an entry
// (lemon:otherForm).
type FormRecord struct {
	Entry    string            `yaml:"entry"`
	Written  string            `yaml:"written"`
	Language string            `yaml:"language,omitempty"`
	Features map[string]string `yaml:"features,omitempty"`
}

// MarkerRecord declares a closed-class function word.
type MarkerRecord struct {
	ID        string `yaml:"id"`
	Canonical string `yaml:"canonical"`
	Language  string `yaml:"language,omitempty"`
}

// BindingRecord associates a frame argument placeholder with the
// taxonomy concept it stands for.
type BindingRecord struct {
	Placeholder string `yaml:"placeholder"`
	Concept     string `yaml:"concept"`
}

// FrameSpec is the serialized form of a frame node: a head word plus
// labeled edges in declaration order.
type FrameSpec struct {
	Root  string     `yaml:"root"`
	Edges []EdgeSpec `yaml:"edges,omitempty"`
}

// EdgeSpec is one labeled edge. Exactly one of Word, Arg, or Frame
// carries the child: a plain leaf word, an argument placeholder, or a
// nested frame.
type EdgeSpec struct {
	Role  string     `yaml:"role"`
	Word  string     `yaml:"word,omitempty"`
	Arg   string     `yaml:"arg,omitempty"`
	Frame *FrameSpec `yaml:"frame,omitempty"`
}

// Build converts the record into a frame tree. Edge labels outside the
// declared role set and ambiguous child variants are rejected.
func (fs *FrameSpec) Build() (*frame.Node, error) {
	if fs.Root == "" {
		return nil, fmt.Errorf("loader: frame missing root word")
	}
	edges := []frame.Edge{{Role: frame.RoleRoot, Child: frame.Word(fs.Root)}}
	for _, es := range fs.Edges {
		role, err := frame.ParseRole(es.Role)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		child, err := es.build()
		if err != nil {
			return nil, err
		}
		edges = append(edges, frame.Edge{Role: role, Child: child})
	}
	return frame.NewFrame(edges...), nil
}

func (es *EdgeSpec) build() (*frame.Node, error) {
	variants := 0
	if es.Word != "" {
		variants++
	}
	if es.Arg != "" {
		variants++
	}
	if es.Frame != nil {
		variants++
	}
	if variants != 1 {
		return nil, fmt.Errorf("loader: edge %q must set exactly one of word, arg, frame", es.Role)
	}
	switch {
	case es.Word != "":
		return frame.Word(es.Word), nil
	case es.Arg != "":
		return frame.Placeholder(es.Arg), nil
	default:
		return es.Frame.Build()
	}
}
