package owl

import "github.com/google/uuid"

// EntityKind identifies the declared kind of a named entity. The values
// equal the Functional-Syntax declaration keywords so a Declaration axiom
// serializes directly from its entity.
type EntityKind string

const (
	KindClass              EntityKind = "Class"
	KindDatatype           EntityKind = "Datatype"
	KindObjectProperty     EntityKind = "ObjectProperty"
	KindDataProperty       EntityKind = "DataProperty"
	KindAnnotationProperty EntityKind = "AnnotationProperty"
	KindNamedIndividual    EntityKind = "NamedIndividual"
)

// ValidEntityKinds lists the declaration keywords accepted inside a
// Declaration axiom.
var ValidEntityKinds = map[EntityKind]bool{
	KindClass:              true,
	KindDatatype:           true,
	KindObjectProperty:     true,
	KindDataProperty:       true,
	KindAnnotationProperty: true,
	KindNamedIndividual:    true,
}

// Entity is a named ontology element: an IRI paired with its declared
// kind. Two entities are equal when both kind and IRI are equal.
type Entity struct {
	Kind EntityKind
	IRI  IRI
}

// Individual is the sealed union of named and anonymous individuals.
// Only NamedIndividual and AnonymousIndividual implement it.
type Individual interface {
	individual()
}

// NamedIndividual is an individual identified by a global IRI.
type NamedIndividual struct {
	IRI IRI
}

func (NamedIndividual) individual() {}

// AnonymousIndividual is a blank node: an individual with document-local
// identity and no global IRI. The ID is only meaningful within the
// document that introduced it.
type AnonymousIndividual struct {
	ID string
}

func (AnonymousIndividual) individual() {}

// NewAnonymousIndividual mints a fresh anonymous individual with a
// process-unique node ID. Parsed documents keep their written node IDs;
// this is for programmatic construction.
func NewAnonymousIndividual() AnonymousIndividual {
	return AnonymousIndividual{ID: "genid-" + uuid.NewString()}
}
