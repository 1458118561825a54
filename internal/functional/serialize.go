package functional

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/owlf/internal/owl"
)

// Serialize renders an ontology as a Functional-Syntax document. For
// every supported axiom form, parsing the output yields a structurally
// equal ontology. IRIs are abbreviated when a declared prefix covers
// them and written in angle brackets otherwise.
func Serialize(o *owl.Ontology) string {
	var b strings.Builder
	w := &writer{b: &b, prefixes: o.Prefixes}
	w.document(o)
	return b.String()
}

// Write renders an ontology to w.
func Write(dst io.Writer, o *owl.Ontology) error {
	_, err := io.WriteString(dst, Serialize(o))
	return err
}

type writer struct {
	b        *strings.Builder
	prefixes *owl.PrefixTable
}

func (w *writer) document(o *owl.Ontology) {
	if w.prefixes != nil {
		for _, name := range w.prefixes.Names() {
			ns, _ := w.prefixes.Get(name)
			fmt.Fprintf(w.b, "Prefix(%s:=<%s>)\n", name, ns)
		}
	}
	w.b.WriteString("Ontology(")
	if o.IRI != "" {
		w.b.WriteString("<" + string(o.IRI) + ">")
		if o.VersionIRI != "" {
			w.b.WriteString(" <" + string(o.VersionIRI) + ">")
		}
	}
	w.b.WriteByte('\n')
	for _, imp := range o.Imports() {
		fmt.Fprintf(w.b, "Import(<%s>)\n", imp)
	}
	for _, ann := range o.Annotations {
		w.b.WriteString(w.annotation(ann))
		w.b.WriteByte('\n')
	}
	for _, a := range o.Axioms() {
		w.b.WriteString(w.axiom(a))
		w.b.WriteByte('\n')
	}
	w.b.WriteString(")\n")
}

// iri abbreviates against the prefix table when possible. The ontology
// and version IRIs are always written in full form so the header stays
// unambiguous.
func (w *writer) iri(iri owl.IRI) string {
	if w.prefixes != nil {
		if abbrev, ok := w.prefixes.Abbreviate(iri); ok {
			return abbrev
		}
	}
	return "<" + string(iri) + ">"
}

func (w *writer) annotation(a owl.Annotation) string {
	var parts []string
	for _, nested := range a.Annotations {
		parts = append(parts, w.annotation(nested))
	}
	parts = append(parts, w.iri(a.Property), w.annotationValue(a.Value))
	return "Annotation(" + strings.Join(parts, " ") + ")"
}

func (w *writer) annotationValue(v owl.AnnotationValue) string {
	switch val := v.(type) {
	case owl.IRI:
		return w.iri(val)
	case owl.Literal:
		return w.literal(val)
	case owl.AnonymousIndividual:
		return "_:" + val.ID
	default:
		return ""
	}
}

func (w *writer) literal(l owl.Literal) string {
	quoted := quoteLexical(l.Lexical)
	switch l.Kind() {
	case owl.LiteralTyped:
		return quoted + "^^" + w.iri(l.Datatype)
	case owl.LiteralLang:
		return quoted + "@" + l.Lang
	default:
		return quoted
	}
}

// quoteLexical escapes the characters the tokenizer interprets.
func quoteLexical(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (w *writer) individual(ind owl.Individual) string {
	switch v := ind.(type) {
	case owl.NamedIndividual:
		return w.iri(v.IRI)
	case owl.AnonymousIndividual:
		return "_:" + v.ID
	default:
		return ""
	}
}

func (w *writer) individuals(inds []owl.Individual) string {
	parts := make([]string, len(inds))
	for i, ind := range inds {
		parts[i] = w.individual(ind)
	}
	return strings.Join(parts, " ")
}

func (w *writer) objectProperty(op owl.ObjectPropertyExpression) string {
	switch v := op.(type) {
	case owl.ObjectProperty:
		return w.iri(v.IRI)
	case owl.ObjectInverseOf:
		return "ObjectInverseOf(" + w.iri(v.Property.IRI) + ")"
	default:
		return ""
	}
}

func (w *writer) classExpression(ce owl.ClassExpression) string {
	switch v := ce.(type) {
	case owl.NamedClass:
		return w.iri(v.IRI)
	case owl.ObjectIntersectionOf:
		return "ObjectIntersectionOf(" + w.classExpressions(v.Operands) + ")"
	case owl.ObjectUnionOf:
		return "ObjectUnionOf(" + w.classExpressions(v.Operands) + ")"
	case owl.ObjectComplementOf:
		return "ObjectComplementOf(" + w.classExpression(v.Operand) + ")"
	case owl.ObjectOneOf:
		parts := make([]string, len(v.Individuals))
		for i, ind := range v.Individuals {
			parts[i] = w.individual(ind)
		}
		return "ObjectOneOf(" + strings.Join(parts, " ") + ")"
	case owl.ObjectSomeValuesFrom:
		return "ObjectSomeValuesFrom(" + w.objectProperty(v.Property) + " " + w.classExpression(v.Filler) + ")"
	case owl.ObjectAllValuesFrom:
		return "ObjectAllValuesFrom(" + w.objectProperty(v.Property) + " " + w.classExpression(v.Filler) + ")"
	case owl.ObjectHasValue:
		return "ObjectHasValue(" + w.objectProperty(v.Property) + " " + w.individual(v.Value) + ")"
	case owl.ObjectCardinality:
		s := fmt.Sprintf("%s(%d %s", v.Kind, v.Bound, w.objectProperty(v.Property))
		if v.Filler != nil {
			s += " " + w.classExpression(v.Filler)
		}
		return s + ")"
	default:
		return ""
	}
}

func (w *writer) classExpressions(operands []owl.ClassExpression) string {
	parts := make([]string, len(operands))
	for i, ce := range operands {
		parts[i] = w.classExpression(ce)
	}
	return strings.Join(parts, " ")
}

func (w *writer) dataRange(dr owl.DataRange) string {
	switch v := dr.(type) {
	case owl.NamedDatatype:
		return w.iri(v.IRI)
	case owl.DataIntersectionOf:
		return "DataIntersectionOf(" + w.dataRanges(v.Operands) + ")"
	case owl.DataUnionOf:
		return "DataUnionOf(" + w.dataRanges(v.Operands) + ")"
	case owl.DataComplementOf:
		return "DataComplementOf(" + w.dataRange(v.Operand) + ")"
	case owl.DataOneOf:
		parts := make([]string, len(v.Literals))
		for i, lit := range v.Literals {
			parts[i] = w.literal(lit)
		}
		return "DataOneOf(" + strings.Join(parts, " ") + ")"
	case owl.DatatypeRestriction:
		parts := []string{w.iri(v.Datatype.IRI)}
		for _, fr := range v.Restrictions {
			parts = append(parts, w.iri(fr.Facet), w.literal(fr.Value))
		}
		return "DatatypeRestriction(" + strings.Join(parts, " ") + ")"
	default:
		return ""
	}
}

func (w *writer) dataRanges(operands []owl.DataRange) string {
	parts := make([]string, len(operands))
	for i, dr := range operands {
		parts[i] = w.dataRange(dr)
	}
	return strings.Join(parts, " ")
}

// axiomParts joins the leading annotations and the operand texts the way
// the grammar reads them back.
func (w *writer) axiomParts(keyword string, anns []owl.Annotation, operands ...string) string {
	parts := make([]string, 0, len(anns)+len(operands))
	for _, ann := range anns {
		parts = append(parts, w.annotation(ann))
	}
	parts = append(parts, operands...)
	return keyword + "(" + strings.Join(parts, " ") + ")"
}

func (w *writer) axiom(a owl.Axiom) string {
	anns := a.AxiomAnnotations()
	switch v := a.(type) {
	case owl.Declaration:
		return w.axiomParts("Declaration", anns,
			string(v.Entity.Kind)+"("+w.iri(v.Entity.IRI)+")")
	case owl.SubClassOf:
		return w.axiomParts("SubClassOf", anns, w.classExpression(v.Sub), w.classExpression(v.Super))
	case owl.EquivalentClasses:
		return w.axiomParts("EquivalentClasses", anns, w.classExpressions(v.Operands))
	case owl.DisjointClasses:
		return w.axiomParts("DisjointClasses", anns, w.classExpressions(v.Operands))
	case owl.SubObjectPropertyOf:
		return w.axiomParts("SubObjectPropertyOf", anns, w.objectProperty(v.Sub), w.objectProperty(v.Super))
	case owl.EquivalentObjectProperties:
		parts := make([]string, len(v.Operands))
		for i, op := range v.Operands {
			parts[i] = w.objectProperty(op)
		}
		return w.axiomParts("EquivalentObjectProperties", anns, strings.Join(parts, " "))
	case owl.InverseObjectProperties:
		return w.axiomParts("InverseObjectProperties", anns, w.objectProperty(v.First), w.objectProperty(v.Second))
	case owl.ObjectPropertyDomain:
		return w.axiomParts("ObjectPropertyDomain", anns, w.objectProperty(v.Property), w.classExpression(v.Domain))
	case owl.ObjectPropertyRange:
		return w.axiomParts("ObjectPropertyRange", anns, w.objectProperty(v.Property), w.classExpression(v.Range))
	case owl.ObjectPropertyCharacteristic:
		return w.axiomParts(string(v.Characteristic), anns, w.objectProperty(v.Property))
	case owl.SubDataPropertyOf:
		return w.axiomParts("SubDataPropertyOf", anns, w.iri(v.Sub), w.iri(v.Super))
	case owl.EquivalentDataProperties:
		parts := make([]string, len(v.Operands))
		for i, iri := range v.Operands {
			parts[i] = w.iri(iri)
		}
		return w.axiomParts("EquivalentDataProperties", anns, strings.Join(parts, " "))
	case owl.DataPropertyDomain:
		return w.axiomParts("DataPropertyDomain", anns, w.iri(v.Property), w.classExpression(v.Domain))
	case owl.DataPropertyRange:
		return w.axiomParts("DataPropertyRange", anns, w.iri(v.Property), w.dataRange(v.Range))
	case owl.FunctionalDataProperty:
		return w.axiomParts("FunctionalDataProperty", anns, w.iri(v.Property))
	case owl.ClassAssertion:
		return w.axiomParts("ClassAssertion", anns, w.classExpression(v.Class), w.individual(v.Individual))
	case owl.ObjectPropertyAssertion:
		return w.axiomParts("ObjectPropertyAssertion", anns,
			w.objectProperty(v.Property), w.individual(v.Subject), w.individual(v.Object))
	case owl.NegativeObjectPropertyAssertion:
		return w.axiomParts("NegativeObjectPropertyAssertion", anns,
			w.objectProperty(v.Property), w.individual(v.Subject), w.individual(v.Object))
	case owl.DataPropertyAssertion:
		return w.axiomParts("DataPropertyAssertion", anns,
			w.iri(v.Property), w.individual(v.Subject), w.literal(v.Value))
	case owl.NegativeDataPropertyAssertion:
		return w.axiomParts("NegativeDataPropertyAssertion", anns,
			w.iri(v.Property), w.individual(v.Subject), w.literal(v.Value))
	case owl.SameIndividual:
		return w.axiomParts("SameIndividual", anns, w.individuals(v.Individuals))
	case owl.DifferentIndividuals:
		return w.axiomParts("DifferentIndividuals", anns, w.individuals(v.Individuals))
	case owl.AnnotationAssertion:
		return w.axiomParts("AnnotationAssertion", anns,
			w.iri(v.Property), w.annotationValue(v.Subject), w.annotationValue(v.Value))
	case owl.SubAnnotationPropertyOf:
		return w.axiomParts("SubAnnotationPropertyOf", anns, w.iri(v.Sub), w.iri(v.Super))
	case owl.AnnotationPropertyDomain:
		return w.axiomParts("AnnotationPropertyDomain", anns, w.iri(v.Property), w.iri(v.Domain))
	case owl.AnnotationPropertyRange:
		return w.axiomParts("AnnotationPropertyRange", anns, w.iri(v.Property), w.iri(v.Range))
	default:
		return ""
	}
}

// SerializeAxiom renders one axiom without the surrounding document.
func SerializeAxiom(a owl.Axiom, prefixes *owl.PrefixTable) string {
	var b strings.Builder
	w := &writer{b: &b, prefixes: prefixes}
	return w.axiom(a)
}
