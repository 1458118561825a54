package owl

// IRI identifies an ontology element by its fully resolved form.
// Abbreviated names (prefix:local) are expanded against a PrefixTable
// before an IRI is constructed, so equality and ordering are plain
// string equality and ordering.
type IRI string

// String returns the full IRI text.
func (iri IRI) String() string { return string(iri) }

// Well-known namespaces used by the standard vocabularies.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
)

// Common datatype IRIs.
const (
	XSDString  IRI = XSDNamespace + "string"
	XSDInteger IRI = XSDNamespace + "integer"
	XSDBoolean IRI = XSDNamespace + "boolean"

	// RDFPlainLiteral is the datatype of literals carrying a language tag.
	RDFPlainLiteral IRI = RDFNamespace + "PlainLiteral"
)
