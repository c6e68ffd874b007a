package lemon

// Namespace is the base IRI prefix for LEMON model terms.
const Namespace = "http://lemon-model.net/lemon#"

// LexinfoNamespace is the base IRI prefix for lexinfo grammatical terms.
const LexinfoNamespace = "http://www.lexinfo.net/ontology/2.0/lexinfo#"

// Class IRIs for lexical entities.
const (
	// ClassLexicalEntry represents a word or multi-word expression.
	ClassLexicalEntry = Namespace + "LexicalEntry"

	// ClassWord represents a single-word lexical entry.
	ClassWord = Namespace + "Word"

	// ClassForm represents a written realization of an entry.
	ClassForm = Namespace + "Form"
)

// Property IRIs tying entries to forms and frames.
const (
	// PropCanonicalForm links an entry to its dictionary form.
	// Domain: ClassLexicalEntry, Range: ClassForm
	PropCanonicalForm = Namespace + "canonicalForm"

	// PropOtherForm links an entry to an additional inflected form.
	// Domain: ClassLexicalEntry, Range: ClassForm
	PropOtherForm = Namespace + "otherForm"

	// PropWrittenRep is the written representation of a form,
	// a language-tagged literal.
	PropWrittenRep = Namespace + "writtenRep"

	// PropPhraseRoot links an entry to the root node of its
	// syntactic frame tree.
	PropPhraseRoot = Namespace + "phraseRoot"

	// PropEdge is the generic edge relation of a frame tree. The
	// grammatical-role edges (root, nsubj, dobj, ...) are declared as
	// subproperties of it in the source data; the binder models them
	// as the closed frame.Role enumeration.
	PropEdge = Namespace + "edge"
)

// Semantic-argument property IRIs.
const (
	// PropSemArg ties a frame argument placeholder to the ontology
	// concept it stands for. The binder realizes this as its
	// placeholder→concept bindings.
	PropSemArg = Namespace + "semArg"
)

// Lexinfo property IRIs for grammatical annotations.
const (
	// PropPartOfSpeech tags an entry with its grammatical category.
	PropPartOfSpeech = LexinfoNamespace + "partOfSpeech"

	// PropNumber tags a form with grammatical number.
	// Values: singular, plural
	PropNumber = LexinfoNamespace + "number"
)
