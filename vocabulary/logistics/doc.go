// Package logistics provides IRIs for the sample transport-domain
// ontology shipped with ontolex: physical objects, vehicles, and
// locations, plus the individuals used by the test datasets.
//
// The hierarchy is a single-parent subclass forest rooted at
// ClassObject, matching the taxonomy store's forest invariant.
package logistics
