package owl

// Axiom is the sealed union of axiom forms. Every variant embeds
// Annotated, so the cross-cutting annotation list is reachable through
// the interface without per-variant switches.
type Axiom interface {
	axiom()

	// AxiomAnnotations returns the annotations attached to the axiom,
	// in written order. May be empty.
	AxiomAnnotations() []Annotation
}

// Annotated carries the ordered annotation list every axiom form has.
// Axiom variants embed it.
type Annotated struct {
	Annotations []Annotation
}

// AxiomAnnotations returns the annotation list.
func (a Annotated) AxiomAnnotations() []Annotation { return a.Annotations }

// Declaration introduces an entity of a given kind.
type Declaration struct {
	Annotated
	Entity Entity
}

func (Declaration) axiom() {}

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Annotated
	Sub   ClassExpression
	Super ClassExpression
}

func (SubClassOf) axiom() {}

// EquivalentClasses states that all listed class expressions have the
// same extension.
type EquivalentClasses struct {
	Annotated
	Operands []ClassExpression
}

func (EquivalentClasses) axiom() {}

// DisjointClasses states that the listed class expressions are pairwise
// disjoint.
type DisjointClasses struct {
	Annotated
	Operands []ClassExpression
}

func (DisjointClasses) axiom() {}

// SubObjectPropertyOf states that Sub is a subproperty of Super.
// Property chains on the subproperty side are not modeled; a
// SubObjectPropertyOf axiom written with an ObjectPropertyChain operand
// is skip-parsed, not represented here.
type SubObjectPropertyOf struct {
	Annotated
	Sub   ObjectPropertyExpression
	Super ObjectPropertyExpression
}

func (SubObjectPropertyOf) axiom() {}

// EquivalentObjectProperties states that the listed property expressions
// have the same extension.
type EquivalentObjectProperties struct {
	Annotated
	Operands []ObjectPropertyExpression
}

func (EquivalentObjectProperties) axiom() {}

// InverseObjectProperties states that First and Second are inverses.
type InverseObjectProperties struct {
	Annotated
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
}

func (InverseObjectProperties) axiom() {}

// ObjectPropertyDomain restricts the subjects of Property to Domain.
type ObjectPropertyDomain struct {
	Annotated
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

func (ObjectPropertyDomain) axiom() {}

// ObjectPropertyRange restricts the objects of Property to Range.
type ObjectPropertyRange struct {
	Annotated
	Property ObjectPropertyExpression
	Range    ClassExpression
}

func (ObjectPropertyRange) axiom() {}

// Characteristic identifies one of the seven object property
// characteristic axioms. The values equal the Functional-Syntax keywords.
type Characteristic string

const (
	Functional        Characteristic = "FunctionalObjectProperty"
	InverseFunctional Characteristic = "InverseFunctionalObjectProperty"
	Reflexive         Characteristic = "ReflexiveObjectProperty"
	Irreflexive       Characteristic = "IrreflexiveObjectProperty"
	Symmetric         Characteristic = "SymmetricObjectProperty"
	Asymmetric        Characteristic = "AsymmetricObjectProperty"
	Transitive        Characteristic = "TransitiveObjectProperty"
)

// ObjectPropertyCharacteristic asserts one characteristic of an object
// property. All seven characteristic axioms share this single-operand
// shape, so they are one variant with a discriminant rather than seven
// structurally identical types.
type ObjectPropertyCharacteristic struct {
	Annotated
	Characteristic Characteristic
	Property       ObjectPropertyExpression
}

func (ObjectPropertyCharacteristic) axiom() {}

// SubDataPropertyOf states that Sub is a subproperty of Super.
type SubDataPropertyOf struct {
	Annotated
	Sub   IRI
	Super IRI
}

func (SubDataPropertyOf) axiom() {}

// EquivalentDataProperties states that the listed data properties have
// the same extension.
type EquivalentDataProperties struct {
	Annotated
	Operands []IRI
}

func (EquivalentDataProperties) axiom() {}

// DataPropertyDomain restricts the subjects of Property to Domain.
type DataPropertyDomain struct {
	Annotated
	Property IRI
	Domain   ClassExpression
}

func (DataPropertyDomain) axiom() {}

// DataPropertyRange restricts the values of Property to Range.
type DataPropertyRange struct {
	Annotated
	Property IRI
	Range    DataRange
}

func (DataPropertyRange) axiom() {}

// FunctionalDataProperty states that Property has at most one value per
// individual.
type FunctionalDataProperty struct {
	Annotated
	Property IRI
}

func (FunctionalDataProperty) axiom() {}

// ClassAssertion states that Individual is an instance of Class.
type ClassAssertion struct {
	Annotated
	Class      ClassExpression
	Individual Individual
}

func (ClassAssertion) axiom() {}

// ObjectPropertyAssertion states that Subject is related to Object by
// Property.
type ObjectPropertyAssertion struct {
	Annotated
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}

func (ObjectPropertyAssertion) axiom() {}

// NegativeObjectPropertyAssertion states that Subject is not related to
// Object by Property.
type NegativeObjectPropertyAssertion struct {
	Annotated
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}

func (NegativeObjectPropertyAssertion) axiom() {}

// DataPropertyAssertion states that Subject has Value for Property.
type DataPropertyAssertion struct {
	Annotated
	Property IRI
	Subject  Individual
	Value    Literal
}

func (DataPropertyAssertion) axiom() {}

// NegativeDataPropertyAssertion states that Subject does not have Value
// for Property.
type NegativeDataPropertyAssertion struct {
	Annotated
	Property IRI
	Subject  Individual
	Value    Literal
}

func (NegativeDataPropertyAssertion) axiom() {}

// SameIndividual states that all listed individuals denote the same
// domain element.
type SameIndividual struct {
	Annotated
	Individuals []Individual
}

func (SameIndividual) axiom() {}

// DifferentIndividuals states that the listed individuals are pairwise
// distinct.
type DifferentIndividuals struct {
	Annotated
	Individuals []Individual
}

func (DifferentIndividuals) axiom() {}

// AnnotationAssertion attaches an annotation value to a subject through
// an annotation property. Subject is an AnnotationValue because the
// grammar admits an IRI or an anonymous individual in subject position.
type AnnotationAssertion struct {
	Annotated
	Property IRI
	Subject  AnnotationValue
	Value    AnnotationValue
}

func (AnnotationAssertion) axiom() {}

// SubAnnotationPropertyOf states that Sub is a subproperty of Super.
type SubAnnotationPropertyOf struct {
	Annotated
	Sub   IRI
	Super IRI
}

func (SubAnnotationPropertyOf) axiom() {}

// AnnotationPropertyDomain gives the domain IRI of an annotation
// property.
type AnnotationPropertyDomain struct {
	Annotated
	Property IRI
	Domain   IRI
}

func (AnnotationPropertyDomain) axiom() {}

// AnnotationPropertyRange gives the range IRI of an annotation property.
type AnnotationPropertyRange struct {
	Annotated
	Property IRI
	Range    IRI
}

func (AnnotationPropertyRange) axiom() {}

// KindOf returns the Functional-Syntax keyword for an axiom value. The
// switch is exhaustive over the sealed union; for characteristic axioms
// the keyword is the characteristic itself.
func KindOf(a Axiom) string {
	switch ax := a.(type) {
	case Declaration:
		return "Declaration"
	case SubClassOf:
		return "SubClassOf"
	case EquivalentClasses:
		return "EquivalentClasses"
	case DisjointClasses:
		return "DisjointClasses"
	case SubObjectPropertyOf:
		return "SubObjectPropertyOf"
	case EquivalentObjectProperties:
		return "EquivalentObjectProperties"
	case InverseObjectProperties:
		return "InverseObjectProperties"
	case ObjectPropertyDomain:
		return "ObjectPropertyDomain"
	case ObjectPropertyRange:
		return "ObjectPropertyRange"
	case ObjectPropertyCharacteristic:
		return string(ax.Characteristic)
	case SubDataPropertyOf:
		return "SubDataPropertyOf"
	case EquivalentDataProperties:
		return "EquivalentDataProperties"
	case DataPropertyDomain:
		return "DataPropertyDomain"
	case DataPropertyRange:
		return "DataPropertyRange"
	case FunctionalDataProperty:
		return "FunctionalDataProperty"
	case ClassAssertion:
		return "ClassAssertion"
	case ObjectPropertyAssertion:
		return "ObjectPropertyAssertion"
	case NegativeObjectPropertyAssertion:
		return "NegativeObjectPropertyAssertion"
	case DataPropertyAssertion:
		return "DataPropertyAssertion"
	case NegativeDataPropertyAssertion:
		return "NegativeDataPropertyAssertion"
	case SameIndividual:
		return "SameIndividual"
	case DifferentIndividuals:
		return "DifferentIndividuals"
	case AnnotationAssertion:
		return "AnnotationAssertion"
	case SubAnnotationPropertyOf:
		return "SubAnnotationPropertyOf"
	case AnnotationPropertyDomain:
		return "AnnotationPropertyDomain"
	case AnnotationPropertyRange:
		return "AnnotationPropertyRange"
	default:
		return ""
	}
}
