package functional

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlf/internal/owl"
)

func TestParse_DeclarationsAndSubClassOf(t *testing.T) {
	input := `Prefix(ex:=<http://example.org/>) Ontology(<http://example.org/o> ` +
		`Declaration(Class(ex:Disease)) Declaration(Class(ex:Alzheimers)) ` +
		`SubClassOf(ex:Alzheimers ex:Disease))`

	onto, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, owl.IRI("http://example.org/o"), onto.IRI)
	require.Equal(t, 3, onto.AxiomCount())

	decl1, ok := onto.Axioms()[0].(owl.Declaration)
	require.True(t, ok)
	assert.Equal(t, owl.KindClass, decl1.Entity.Kind)
	assert.Equal(t, owl.IRI("http://example.org/Disease"), decl1.Entity.IRI)

	decl2, ok := onto.Axioms()[1].(owl.Declaration)
	require.True(t, ok)
	assert.Equal(t, owl.KindClass, decl2.Entity.Kind)

	sub, ok := onto.Axioms()[2].(owl.SubClassOf)
	require.True(t, ok)
	assert.Equal(t, owl.NamedClass{IRI: "http://example.org/Alzheimers"}, sub.Sub)
	assert.Equal(t, owl.NamedClass{IRI: "http://example.org/Disease"}, sub.Super)
}

func TestParse_PrefixIdempotence(t *testing.T) {
	abbreviated, err := Parse(`Prefix(ex:=<http://x/>) Ontology(Declaration(Class(ex:Foo)))`)
	require.NoError(t, err)
	full, err := Parse(`Ontology(Declaration(Class(<http://x/Foo>)))`)
	require.NoError(t, err)

	a := abbreviated.Axioms()[0].(owl.Declaration)
	b := full.Axioms()[0].(owl.Declaration)
	assert.Equal(t, a.Entity.IRI, b.Entity.IRI)
}

func TestParse_WhitespaceAndCommentsIgnored(t *testing.T) {
	input := `
# document comment
Prefix(ex:=<http://x/>)   # trailing comment
Ontology( <http://x/o>
	# comment between axioms
	Declaration( Class( ex:A ) )
	SubClassOf(
		ex:A
		ex:B # inline
	)
)
`
	onto, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, 2, onto.AxiomCount())
}

func TestParse_HeaderWithVersionAndImports(t *testing.T) {
	input := `Ontology(<http://x/o> <http://x/o/1.0>
Import(<http://y/base>)
Import(<http://z/upper>)
Import(<http://y/base>)
)`
	onto, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, owl.IRI("http://x/o"), onto.IRI)
	assert.Equal(t, owl.IRI("http://x/o/1.0"), onto.VersionIRI)
	assert.Equal(t, []owl.IRI{"http://y/base", "http://z/upper"}, onto.Imports())
}

func TestParse_ImportLookaheadRespectsTokenBoundary(t *testing.T) {
	// A keyword merely starting with "Import" is not an import clause; it
	// falls through to axiom dispatch and fails there.
	_, err := Parse(`Ontology(<http://x/o> <http://x/v> Importer(<http://x/a>))`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown axiom keyword "Importer"`)
}

func TestParse_EmptyOntology(t *testing.T) {
	onto, err := Parse("Ontology()")
	require.NoError(t, err)
	assert.Empty(t, onto.IRI)
	assert.Empty(t, onto.VersionIRI)
	assert.Equal(t, 0, onto.AxiomCount())
}

func TestParse_OntologyAnnotations(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(<http://x/o>
Annotation(ex:note "created by hand")
Declaration(Class(ex:A))
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, onto.Annotations, 1)
	assert.Equal(t, owl.IRI("http://x/note"), onto.Annotations[0].Property)
	assert.Equal(t, owl.NewLiteral("created by hand"), onto.Annotations[0].Value)
	assert.Equal(t, 1, onto.AxiomCount())
}

func TestParse_TypedAndLanguageLiterals(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Ontology(
DataPropertyAssertion(ex:age ex:p1 "65"^^xsd:integer)
DataPropertyAssertion(ex:label ex:p1 "Disease"@en)
DataPropertyAssertion(ex:note ex:p1 "plain")
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 3, onto.AxiomCount())

	typed := onto.Axioms()[0].(owl.DataPropertyAssertion).Value
	assert.Equal(t, owl.LiteralTyped, typed.Kind())
	assert.Equal(t, "65", typed.Lexical)
	assert.Equal(t, owl.XSDInteger, typed.Datatype)
	assert.Empty(t, typed.Lang)

	lang := onto.Axioms()[1].(owl.DataPropertyAssertion).Value
	assert.Equal(t, owl.LiteralLang, lang.Kind())
	assert.Equal(t, "Disease", lang.Lexical)
	assert.Equal(t, "en", lang.Lang)
	assert.Empty(t, lang.Datatype)

	plain := onto.Axioms()[2].(owl.DataPropertyAssertion).Value
	assert.Equal(t, owl.LiteralPlain, plain.Kind())
}

func TestParse_AnnotationTransparency(t *testing.T) {
	plain, err := Parse(`Prefix(ex:=<http://x/>) Ontology(SubClassOf(ex:A ex:B))`)
	require.NoError(t, err)
	annotated, err := Parse(`Prefix(ex:=<http://x/>) Ontology(SubClassOf(Annotation(ex:p "v") ex:A ex:B))`)
	require.NoError(t, err)

	a := plain.Axioms()[0].(owl.SubClassOf)
	b := annotated.Axioms()[0].(owl.SubClassOf)

	assert.Equal(t, a.Sub, b.Sub)
	assert.Equal(t, a.Super, b.Super)
	assert.Empty(t, a.Annotations)
	require.Len(t, b.Annotations, 1)
	assert.Equal(t, owl.IRI("http://x/p"), b.Annotations[0].Property)
}

func TestParse_NestedAnnotations(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
SubClassOf(Annotation(Annotation(ex:meta "m") ex:note "n") ex:A ex:B)
)`
	onto, err := Parse(input)
	require.NoError(t, err)

	anns := onto.Axioms()[0].AxiomAnnotations()
	require.Len(t, anns, 1)
	require.Len(t, anns[0].Annotations, 1)
	assert.Equal(t, owl.IRI("http://x/meta"), anns[0].Annotations[0].Property)
}

func TestParse_DeepNestingPreserved(t *testing.T) {
	const depth = 50
	var b strings.Builder
	b.WriteString(`Prefix(ex:=<http://x/>) Ontology(SubClassOf(ex:B `)
	for i := 0; i < depth; i++ {
		b.WriteString("ObjectComplementOf(")
	}
	b.WriteString("ex:A")
	for i := 0; i < depth; i++ {
		b.WriteString(")")
	}
	b.WriteString("))")

	onto, err := Parse(b.String())
	require.NoError(t, err)

	expr := onto.Axioms()[0].(owl.SubClassOf).Super
	for i := 0; i < depth; i++ {
		comp, ok := expr.(owl.ObjectComplementOf)
		require.True(t, ok, "depth %d", i)
		expr = comp.Operand
	}
	assert.Equal(t, owl.NamedClass{IRI: "http://x/A"}, expr)
}

func TestParse_ClassExpressions(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
SubClassOf(ex:A ObjectIntersectionOf(ex:B ex:C ObjectUnionOf(ex:D ex:E)))
SubClassOf(ex:A ObjectSomeValuesFrom(ex:p ex:B))
SubClassOf(ex:A ObjectAllValuesFrom(ObjectInverseOf(ex:p) ex:B))
SubClassOf(ex:A ObjectHasValue(ex:p ex:bob))
SubClassOf(ex:A ObjectOneOf(ex:bob _:anon1))
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 5, onto.AxiomCount())

	inter := onto.Axioms()[0].(owl.SubClassOf).Super.(owl.ObjectIntersectionOf)
	require.Len(t, inter.Operands, 3)
	union := inter.Operands[2].(owl.ObjectUnionOf)
	assert.Len(t, union.Operands, 2)

	some := onto.Axioms()[1].(owl.SubClassOf).Super.(owl.ObjectSomeValuesFrom)
	assert.Equal(t, owl.ObjectProperty{IRI: "http://x/p"}, some.Property)
	assert.Equal(t, owl.NamedClass{IRI: "http://x/B"}, some.Filler)

	all := onto.Axioms()[2].(owl.SubClassOf).Super.(owl.ObjectAllValuesFrom)
	assert.Equal(t, owl.ObjectInverseOf{Property: owl.ObjectProperty{IRI: "http://x/p"}}, all.Property)

	hasValue := onto.Axioms()[3].(owl.SubClassOf).Super.(owl.ObjectHasValue)
	assert.Equal(t, owl.NamedIndividual{IRI: "http://x/bob"}, hasValue.Value)

	oneOf := onto.Axioms()[4].(owl.SubClassOf).Super.(owl.ObjectOneOf)
	require.Len(t, oneOf.Individuals, 2)
	assert.Equal(t, owl.AnonymousIndividual{ID: "anon1"}, oneOf.Individuals[1])
}

func TestParse_Cardinalities(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
SubClassOf(ex:A ObjectMinCardinality(2 ex:p))
SubClassOf(ex:A ObjectExactCardinality(1 ex:p ex:B))
SubClassOf(ex:A ObjectMaxCardinality(0 ex:p))
)`
	onto, err := Parse(input)
	require.NoError(t, err)

	unqualified := onto.Axioms()[0].(owl.SubClassOf).Super.(owl.ObjectCardinality)
	assert.Equal(t, owl.CardinalityMin, unqualified.Kind)
	assert.Equal(t, 2, unqualified.Bound)
	assert.Nil(t, unqualified.Filler)

	qualified := onto.Axioms()[1].(owl.SubClassOf).Super.(owl.ObjectCardinality)
	assert.Equal(t, owl.CardinalityExact, qualified.Kind)
	assert.Equal(t, owl.NamedClass{IRI: "http://x/B"}, qualified.Filler)

	zero := onto.Axioms()[2].(owl.SubClassOf).Super.(owl.ObjectCardinality)
	assert.Equal(t, 0, zero.Bound)
}

func TestParse_PropertyAxioms(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
SubObjectPropertyOf(ex:hasParent ex:hasAncestor)
InverseObjectProperties(ex:hasParent ObjectInverseOf(ex:hasChild))
EquivalentObjectProperties(ex:p ex:q ex:r)
ObjectPropertyDomain(ex:hasParent ex:Person)
ObjectPropertyRange(ex:hasParent ex:Person)
TransitiveObjectProperty(ex:hasAncestor)
FunctionalObjectProperty(ex:hasBirthMother)
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 7, onto.AxiomCount())

	equiv := onto.Axioms()[2].(owl.EquivalentObjectProperties)
	assert.Len(t, equiv.Operands, 3)

	trans := onto.Axioms()[5].(owl.ObjectPropertyCharacteristic)
	assert.Equal(t, owl.Transitive, trans.Characteristic)
	assert.Equal(t, owl.ObjectProperty{IRI: "http://x/hasAncestor"}, trans.Property)
}

func TestParse_DataPropertyAxioms(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Ontology(
SubDataPropertyOf(ex:hasAge ex:hasValue)
EquivalentDataProperties(ex:age ex:years)
DataPropertyDomain(ex:age ex:Person)
DataPropertyRange(ex:age xsd:integer)
FunctionalDataProperty(ex:age)
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 5, onto.AxiomCount())

	rng := onto.Axioms()[3].(owl.DataPropertyRange)
	assert.Equal(t, owl.NamedDatatype{IRI: owl.XSDInteger}, rng.Range)
}

func TestParse_DataRanges(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Ontology(
DataPropertyRange(ex:age DatatypeRestriction(xsd:integer xsd:minInclusive "0"^^xsd:integer xsd:maxInclusive "150"^^xsd:integer))
DataPropertyRange(ex:grade DataOneOf("A" "B" "C"))
DataPropertyRange(ex:score DataComplementOf(xsd:string))
DataPropertyRange(ex:value DataUnionOf(xsd:integer xsd:boolean))
DataPropertyRange(ex:count DataIntersectionOf(xsd:integer DataComplementOf(xsd:boolean)))
)`
	onto, err := Parse(input)
	require.NoError(t, err)

	restriction := onto.Axioms()[0].(owl.DataPropertyRange).Range.(owl.DatatypeRestriction)
	assert.Equal(t, owl.NamedDatatype{IRI: owl.XSDInteger}, restriction.Datatype)
	require.Len(t, restriction.Restrictions, 2)
	assert.Equal(t, owl.IRI("http://www.w3.org/2001/XMLSchema#minInclusive"), restriction.Restrictions[0].Facet)
	assert.Equal(t, owl.NewTypedLiteral("0", owl.XSDInteger), restriction.Restrictions[0].Value)

	oneOf := onto.Axioms()[1].(owl.DataPropertyRange).Range.(owl.DataOneOf)
	assert.Len(t, oneOf.Literals, 3)

	complement := onto.Axioms()[2].(owl.DataPropertyRange).Range.(owl.DataComplementOf)
	assert.Equal(t, owl.NamedDatatype{IRI: owl.XSDString}, complement.Operand)
}

func TestParse_AssertionAxioms(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
ClassAssertion(ex:Person ex:bob)
ClassAssertion(ex:Person _:someone)
ObjectPropertyAssertion(ex:knows ex:bob ex:alice)
NegativeObjectPropertyAssertion(ex:knows ex:bob _:stranger)
DataPropertyAssertion(ex:age ex:bob "42"^^<http://www.w3.org/2001/XMLSchema#integer>)
NegativeDataPropertyAssertion(ex:age ex:bob "41")
SameIndividual(ex:bob ex:robert)
DifferentIndividuals(ex:bob ex:alice _:someone)
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 8, onto.AxiomCount())

	anon := onto.Axioms()[1].(owl.ClassAssertion)
	assert.Equal(t, owl.AnonymousIndividual{ID: "someone"}, anon.Individual)

	neg := onto.Axioms()[3].(owl.NegativeObjectPropertyAssertion)
	assert.Equal(t, owl.AnonymousIndividual{ID: "stranger"}, neg.Object)

	diff := onto.Axioms()[7].(owl.DifferentIndividuals)
	assert.Len(t, diff.Individuals, 3)
}

func TestParse_AnnotationAxioms(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Prefix(rdfs:=<http://www.w3.org/2000/01/rdf-schema#>)
Ontology(
AnnotationAssertion(rdfs:label ex:Disease "Disease"@en)
AnnotationAssertion(ex:source _:doc ex:registry)
SubAnnotationPropertyOf(ex:note rdfs:comment)
AnnotationPropertyDomain(ex:note ex:Thing)
AnnotationPropertyRange(ex:note ex:Text)
)`
	onto, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 5, onto.AxiomCount())

	label := onto.Axioms()[0].(owl.AnnotationAssertion)
	assert.Equal(t, owl.IRI("http://www.w3.org/2000/01/rdf-schema#label"), label.Property)
	assert.Equal(t, owl.IRI("http://x/Disease"), label.Subject)
	assert.Equal(t, owl.NewLangLiteral("Disease", "en"), label.Value)

	anonSubject := onto.Axioms()[1].(owl.AnnotationAssertion)
	assert.Equal(t, owl.AnonymousIndividual{ID: "doc"}, anonSubject.Subject)
}

func TestParseDocument_SkipsUnmodeledConstructs(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
Declaration(Class(ex:A))
HasKey(ex:A () (ex:key))
Declaration(Class(ex:B))
DatatypeDefinition(ex:SSN DatatypeRestriction(<http://www.w3.org/2001/XMLSchema#string> <http://www.w3.org/2001/XMLSchema#pattern> "[0-9]+"))
SubClassOf(ex:A ex:B)
)`
	res, err := ParseDocument(input)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Ontology.AxiomCount())
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, "HasKey", res.Skipped[0].Keyword)
	assert.Equal(t, 3, res.Skipped[0].Line)
	assert.Equal(t, "DatatypeDefinition", res.Skipped[1].Keyword)
}

func TestParseDocument_SkipsPropertyChains(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
SubObjectPropertyOf(ObjectPropertyChain(ex:hasParent ex:hasParent) ex:hasGrandparent)
SubObjectPropertyOf(ex:hasFather ex:hasParent)
)`
	res, err := ParseDocument(input)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Ontology.AxiomCount())
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "SubObjectPropertyOf", res.Skipped[0].Keyword)
}

func TestParse_UnknownKeywordIsFatal(t *testing.T) {
	_, err := Parse(`Ontology(TotallyMadeUp(<http://x/a>))`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown axiom keyword")
}

func TestParse_ErrorPositionMatchesOffendingLine(t *testing.T) {
	input := `Prefix(ex:=<http://x/>)
Ontology(<http://x/o>
SubClassOf(ex:A)
)`
	_, err := Parse(input)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
}

func TestParse_UnbalancedParensFail(t *testing.T) {
	_, err := Parse(`Ontology(Declaration(Class(<http://x/A>))`)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestParse_TrailingContentFails(t *testing.T) {
	_, err := Parse(`Ontology() leftover`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected content after ontology")
}

func TestParse_MissingOntologyFails(t *testing.T) {
	_, err := Parse(`Prefix(ex:=<http://x/>)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected end of input")
}

func TestParse_UndeclaredPrefixLenientByDefault(t *testing.T) {
	onto, err := Parse(`Ontology(Declaration(Class(foo:Bar)))`)
	require.NoError(t, err)

	decl := onto.Axioms()[0].(owl.Declaration)
	assert.Equal(t, owl.IRI("foo:Bar"), decl.Entity.IRI)
}

func TestParse_UndeclaredPrefixStrictMode(t *testing.T) {
	_, err := Parse(`Ontology(Declaration(Class(foo:Bar)))`, WithStrictPrefixes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared prefix")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
}

func TestParse_LanguageTagValidation(t *testing.T) {
	doc := `Prefix(ex:=<http://x/>) Ontology(DataPropertyAssertion(ex:label ex:a "x"@zz-99-qq-00))`

	// Lenient mode takes the tag at face value.
	_, err := Parse(doc)
	require.NoError(t, err)

	// Strict mode rejects tags BCP 47 cannot parse.
	_, err = Parse(doc, WithStrictLanguageTags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language tag")
}

func TestParseFile_MissingFileIsFileError(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.ofn"))
	require.Error(t, err)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.False(t, IsParseError(err))
}

func TestParse_DeclarationKinds(t *testing.T) {
	input := `Prefix(ex:=<http://x/>) Ontology(
Declaration(Class(ex:A))
Declaration(Datatype(ex:D))
Declaration(ObjectProperty(ex:p))
Declaration(DataProperty(ex:q))
Declaration(AnnotationProperty(ex:r))
Declaration(NamedIndividual(ex:i))
)`
	onto, err := Parse(input)
	require.NoError(t, err)

	kinds := make([]owl.EntityKind, 0, onto.AxiomCount())
	for _, a := range onto.Axioms() {
		kinds = append(kinds, a.(owl.Declaration).Entity.Kind)
	}
	assert.Equal(t, []owl.EntityKind{
		owl.KindClass, owl.KindDatatype, owl.KindObjectProperty,
		owl.KindDataProperty, owl.KindAnnotationProperty, owl.KindNamedIndividual,
	}, kinds)
}

func TestParse_BadDeclarationKind(t *testing.T) {
	_, err := Parse(`Ontology(Declaration(Widget(<http://x/A>)))`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity kind")
}

func TestParse_EquivalentClassesArity(t *testing.T) {
	_, err := Parse(`Prefix(ex:=<http://x/>) Ontology(EquivalentClasses(ex:A))`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two")
}
