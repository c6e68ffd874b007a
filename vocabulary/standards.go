package vocabulary

// Namespace prefixes for the standard W3C vocabularies.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// RDF Standard IRIs
const (
	// RdfType asserts that a resource is an instance of a class.
	// Example: ":obj11 rdf:type :drum"
	RdfType = RDFNamespace + "type"
)

// RDF Schema Standard IRIs
const (
	// RdfsSubClassOf asserts that one class is a subclass of another.
	// The taxonomy store models this as the single-parent edge of the
	// subclass forest.
	RdfsSubClassOf = RDFSNamespace + "subClassOf"

	// RdfsSubPropertyOf asserts that one property specializes another.
	// The source data uses it to declare grammatical-role edges as
	// subproperties of the generic lemon:edge relation.
	RdfsSubPropertyOf = RDFSNamespace + "subPropertyOf"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = RDFSNamespace + "label"
)

// OWL Standard IRIs
const (
	// OwlClass is the type of all OWL classes.
	OwlClass = OWLNamespace + "Class"

	// OwlNamedIndividual is the type of all named individuals.
	OwlNamedIndividual = OWLNamespace + "NamedIndividual"

	// OwlObjectProperty is the type of object properties.
	OwlObjectProperty = OWLNamespace + "ObjectProperty"
)
