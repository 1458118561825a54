package owl

import "reflect"

// Ontology is the parse target and the unit callers work with: header
// metadata (IRI, version IRI, imports, ontology annotations), the prefix
// table the document was read with, and the axiom list in written order.
//
// An Ontology is an ordinary mutable value. The parser is its only
// writer during a parse call; afterwards callers may mutate it freely.
// It is not safe for concurrent mutation.
type Ontology struct {
	// IRI is the ontology IRI, empty when the document declared none.
	IRI IRI

	// VersionIRI is the version IRI, empty when absent. A version IRI
	// without an ontology IRI does not occur; the header grammar reads
	// the ontology IRI first.
	VersionIRI IRI

	// Annotations are the ontology annotations from the header.
	Annotations []Annotation

	// Prefixes is the prefix table the document was parsed with.
	Prefixes *PrefixTable

	imports []IRI
	axioms  []Axiom
}

// NewOntology creates an empty ontology with a fresh prefix table.
func NewOntology() *Ontology {
	return &Ontology{Prefixes: NewPrefixTable()}
}

// AddAxiom appends an axiom. Duplicates are kept; the axiom list mirrors
// the document.
func (o *Ontology) AddAxiom(a Axiom) {
	o.axioms = append(o.axioms, a)
}

// Axioms returns the axioms in insertion order. The slice is shared;
// callers that need to mutate it should copy first.
func (o *Ontology) Axioms() []Axiom { return o.axioms }

// AxiomCount returns the number of axioms.
func (o *Ontology) AxiomCount() int { return len(o.axioms) }

// ContainsAxiom reports whether a structurally equal axiom is present.
// Equality is structural, not insertion identity: two independently
// built axioms with the same operands and annotations match.
func (o *Ontology) ContainsAxiom(a Axiom) bool {
	for _, existing := range o.axioms {
		if reflect.DeepEqual(existing, a) {
			return true
		}
	}
	return false
}

// AddImport records an imported ontology IRI. Import IRIs form a set;
// re-adding an IRI keeps its first position.
func (o *Ontology) AddImport(iri IRI) {
	for _, existing := range o.imports {
		if existing == iri {
			return
		}
	}
	o.imports = append(o.imports, iri)
}

// Imports returns the imported ontology IRIs in first-seen order.
func (o *Ontology) Imports() []IRI {
	imports := make([]IRI, len(o.imports))
	copy(imports, o.imports)
	return imports
}

// CountByKind tallies axioms by their Functional-Syntax keyword.
func (o *Ontology) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, a := range o.axioms {
		counts[KindOf(a)]++
	}
	return counts
}
