package owl

// DataRange is the sealed union of data range forms, mirroring
// ClassExpression over datatypes and literals.
type DataRange interface {
	dataRange()
}

// NamedDatatype is a data range consisting of a single datatype IRI.
type NamedDatatype struct {
	IRI IRI
}

func (NamedDatatype) dataRange() {}

// DataIntersectionOf is the conjunction of two or more data ranges.
type DataIntersectionOf struct {
	Operands []DataRange
}

func (DataIntersectionOf) dataRange() {}

// DataUnionOf is the disjunction of two or more data ranges.
type DataUnionOf struct {
	Operands []DataRange
}

func (DataUnionOf) dataRange() {}

// DataComplementOf is the negation of a data range.
type DataComplementOf struct {
	Operand DataRange
}

func (DataComplementOf) dataRange() {}

// DataOneOf is the enumeration of a finite set of literals.
type DataOneOf struct {
	Literals []Literal
}

func (DataOneOf) dataRange() {}

// FacetRestriction pairs a constraining facet IRI (xsd:minInclusive,
// xsd:pattern, ...) with its restriction value.
type FacetRestriction struct {
	Facet IRI
	Value Literal
}

// DatatypeRestriction narrows a datatype by one or more facet
// restrictions.
type DatatypeRestriction struct {
	Datatype     NamedDatatype
	Restrictions []FacetRestriction
}

func (DatatypeRestriction) dataRange() {}
