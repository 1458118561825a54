package owl

// ObjectPropertyExpression is the sealed union of an object property and
// its inverse. Only ObjectProperty and ObjectInverseOf implement it.
type ObjectPropertyExpression interface {
	objectPropertyExpression()
}

// ObjectProperty names an object property by IRI.
type ObjectProperty struct {
	IRI IRI
}

func (ObjectProperty) objectPropertyExpression() {}

// ObjectInverseOf is the inverse of a named object property
// (ObjectInverseOf(P) in the Functional Syntax).
type ObjectInverseOf struct {
	Property ObjectProperty
}

func (ObjectInverseOf) objectPropertyExpression() {}

// ClassExpression is the sealed union of class expression forms. The
// compound forms own their operands exclusively; expression trees are
// acyclic and never shared between axioms.
type ClassExpression interface {
	classExpression()
}

// NamedClass is a class expression consisting of a single class IRI.
type NamedClass struct {
	IRI IRI
}

func (NamedClass) classExpression() {}

// ObjectIntersectionOf is the conjunction of two or more class expressions.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

func (ObjectIntersectionOf) classExpression() {}

// ObjectUnionOf is the disjunction of two or more class expressions.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

func (ObjectUnionOf) classExpression() {}

// ObjectComplementOf is the negation of a class expression.
type ObjectComplementOf struct {
	Operand ClassExpression
}

func (ObjectComplementOf) classExpression() {}

// ObjectOneOf is the enumeration of a finite set of individuals.
type ObjectOneOf struct {
	Individuals []Individual
}

func (ObjectOneOf) classExpression() {}

// ObjectSomeValuesFrom is the existential restriction: individuals with
// at least one Property successor in Filler.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectSomeValuesFrom) classExpression() {}

// ObjectAllValuesFrom is the universal restriction: individuals whose
// Property successors all fall in Filler.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectAllValuesFrom) classExpression() {}

// ObjectHasValue restricts Property to a specific individual value.
type ObjectHasValue struct {
	Property ObjectPropertyExpression
	Value    Individual
}

func (ObjectHasValue) classExpression() {}

// CardinalityKind discriminates the three cardinality restriction forms.
type CardinalityKind string

const (
	CardinalityMin   CardinalityKind = "ObjectMinCardinality"
	CardinalityMax   CardinalityKind = "ObjectMaxCardinality"
	CardinalityExact CardinalityKind = "ObjectExactCardinality"
)

// ObjectCardinality is a min/max/exact cardinality restriction on an
// object property. Filler is nil when the restriction is unqualified.
type ObjectCardinality struct {
	Kind     CardinalityKind
	Bound    int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectCardinality) classExpression() {}
