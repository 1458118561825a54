package owl

// AnnotationValue is the sealed union of values an annotation may carry:
// an IRI, a literal, or an anonymous individual.
type AnnotationValue interface {
	annotationValue()
}

func (IRI) annotationValue()                 {}
func (Literal) annotationValue()             {}
func (AnonymousIndividual) annotationValue() {}

// Annotation attaches a property/value pair to an axiom, to the ontology
// header, or to another annotation. Annotations nest without bound.
type Annotation struct {
	Property IRI
	Value    AnnotationValue

	// Annotations are annotations on this annotation itself
	// (Annotation(Annotation(...) P v) in the grammar).
	Annotations []Annotation
}
