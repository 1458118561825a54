package functional

import "github.com/roach88/owlf/internal/owl"

// Static keyword sets for axiom dispatch. A keyword in none of these
// sets is a hard error; a keyword in skippedKeywords is balanced-skipped
// and recorded as a diagnostic.

var classAxiomKeywords = map[string]bool{
	"SubClassOf":        true,
	"EquivalentClasses": true,
	"DisjointClasses":   true,
}

var objectPropertyAxiomKeywords = map[string]bool{
	"SubObjectPropertyOf":        true,
	"EquivalentObjectProperties": true,
	"InverseObjectProperties":    true,
	"ObjectPropertyDomain":       true,
	"ObjectPropertyRange":        true,
}

// characteristicKeywords maps the seven characteristic axiom keywords to
// their discriminant. They belong to the object property axiom family.
var characteristicKeywords = map[string]owl.Characteristic{
	"FunctionalObjectProperty":        owl.Functional,
	"InverseFunctionalObjectProperty": owl.InverseFunctional,
	"ReflexiveObjectProperty":         owl.Reflexive,
	"IrreflexiveObjectProperty":       owl.Irreflexive,
	"SymmetricObjectProperty":         owl.Symmetric,
	"AsymmetricObjectProperty":        owl.Asymmetric,
	"TransitiveObjectProperty":        owl.Transitive,
}

var dataPropertyAxiomKeywords = map[string]bool{
	"SubDataPropertyOf":        true,
	"EquivalentDataProperties": true,
	"DataPropertyDomain":       true,
	"DataPropertyRange":        true,
	"FunctionalDataProperty":   true,
}

var assertionAxiomKeywords = map[string]bool{
	"SameIndividual":                  true,
	"DifferentIndividuals":            true,
	"ClassAssertion":                  true,
	"ObjectPropertyAssertion":         true,
	"NegativeObjectPropertyAssertion": true,
	"DataPropertyAssertion":           true,
	"NegativeDataPropertyAssertion":   true,
}

var annotationAxiomKeywords = map[string]bool{
	"AnnotationAssertion":      true,
	"SubAnnotationPropertyOf":  true,
	"AnnotationPropertyDomain": true,
	"AnnotationPropertyRange":  true,
}

// skippedKeywords are well-formed Functional-Syntax axiom forms the
// object model does not represent. They parse as balanced skips.
var skippedKeywords = map[string]bool{
	"DatatypeDefinition": true,
	"HasKey":             true,
	"DisjointUnion":      true,
	"DLSafeRule":         true,
}

// isAxiomKeyword reports whether tok opens any recognized axiom form,
// supported or skipped.
func isAxiomKeyword(tok string) bool {
	if tok == "Declaration" {
		return true
	}
	if _, ok := characteristicKeywords[tok]; ok {
		return true
	}
	return classAxiomKeywords[tok] ||
		objectPropertyAxiomKeywords[tok] ||
		dataPropertyAxiomKeywords[tok] ||
		assertionAxiomKeywords[tok] ||
		annotationAxiomKeywords[tok] ||
		skippedKeywords[tok]
}
