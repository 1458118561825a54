package functional

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/roach88/owlf/internal/owl"
)

// parseAnnotations reads zero or more Annotation(...) forms.
func (p *parser) parseAnnotations() ([]owl.Annotation, error) {
	var anns []owl.Annotation
	for {
		m := p.cur.save()
		if tok := p.cur.readToken(); tok != "Annotation" {
			p.cur.restore(m)
			return anns, nil
		}
		ann, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		anns = append(anns, ann)
	}
}

// parseAnnotation parses one Annotation after its keyword: nested
// annotations first, then the property and the value.
func (p *parser) parseAnnotation() (owl.Annotation, error) {
	if err := p.cur.expect('('); err != nil {
		return owl.Annotation{}, err
	}
	nested, err := p.parseAnnotations()
	if err != nil {
		return owl.Annotation{}, err
	}
	prop, err := p.parseIRI()
	if err != nil {
		return owl.Annotation{}, err
	}
	value, err := p.parseAnnotationValue()
	if err != nil {
		return owl.Annotation{}, err
	}
	if err := p.cur.expect(')'); err != nil {
		return owl.Annotation{}, err
	}
	return owl.Annotation{Property: prop, Value: value, Annotations: nested}, nil
}

// parseAnnotationValue reads an IRI, a literal, or an anonymous
// individual.
func (p *parser) parseAnnotationValue() (owl.AnnotationValue, error) {
	p.cur.skipSpace()
	switch p.cur.peek() {
	case '"':
		return p.parseLiteral()
	case '<':
		return p.parseIRI()
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return nil, p.cur.errf("expected annotation value")
	}
	if id, ok := strings.CutPrefix(tok, "_:"); ok {
		return owl.AnonymousIndividual{ID: id}, nil
	}
	return p.resolve(tok, m)
}

// parseAnnotationSubject reads the subject of an AnnotationAssertion:
// an IRI or an anonymous individual.
func (p *parser) parseAnnotationSubject() (owl.AnnotationValue, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		return p.parseIRI()
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return nil, p.cur.errf("expected annotation subject")
	}
	if id, ok := strings.CutPrefix(tok, "_:"); ok {
		return owl.AnonymousIndividual{ID: id}, nil
	}
	return p.resolve(tok, m)
}

// parseIndividual reads a named individual (by IRI) or an anonymous one
// (_:nodeID).
func (p *parser) parseIndividual() (owl.Individual, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owl.NamedIndividual{IRI: iri}, nil
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return nil, p.cur.errf("expected individual")
	}
	if id, ok := strings.CutPrefix(tok, "_:"); ok {
		return owl.AnonymousIndividual{ID: id}, nil
	}
	iri, err := p.resolve(tok, m)
	if err != nil {
		return nil, err
	}
	return owl.NamedIndividual{IRI: iri}, nil
}

// parseObjectPropertyExpression reads a named object property or
// ObjectInverseOf(P).
func (p *parser) parseObjectPropertyExpression() (owl.ObjectPropertyExpression, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owl.ObjectProperty{IRI: iri}, nil
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return nil, p.cur.errf("expected object property expression")
	}
	if tok == "ObjectInverseOf" {
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.ObjectInverseOf{Property: owl.ObjectProperty{IRI: iri}}, nil
	}
	iri, err := p.resolve(tok, m)
	if err != nil {
		return nil, err
	}
	return owl.ObjectProperty{IRI: iri}, nil
}

// parseClassExpression reads one class expression. Compound keywords
// open their own parenthesized operand lists; anything else is a bare
// IRI wrapped as a named class.
func (p *parser) parseClassExpression() (owl.ClassExpression, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owl.NamedClass{IRI: iri}, nil
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return nil, p.cur.errf("expected class expression")
	}
	switch tok {
	case "ObjectIntersectionOf", "ObjectUnionOf":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		var operands []owl.ClassExpression
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			if p.cur.eof() {
				return nil, p.cur.errf("unexpected end of input, expected %q", ")")
			}
			ce, err := p.parseClassExpression()
			if err != nil {
				return nil, err
			}
			operands = append(operands, ce)
		}
		if len(operands) < 2 {
			return nil, p.cur.errf("%s needs at least two operands", tok)
		}
		p.cur.next() // ')'
		if tok == "ObjectIntersectionOf" {
			return owl.ObjectIntersectionOf{Operands: operands}, nil
		}
		return owl.ObjectUnionOf{Operands: operands}, nil
	case "ObjectComplementOf":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		operand, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.ObjectComplementOf{Operand: operand}, nil
	case "ObjectOneOf":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		var individuals []owl.Individual
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			ind, err := p.parseIndividual()
			if err != nil {
				return nil, err
			}
			individuals = append(individuals, ind)
		}
		if len(individuals) == 0 {
			return nil, p.cur.errf("ObjectOneOf needs at least one individual")
		}
		p.cur.next() // ')'
		return owl.ObjectOneOf{Individuals: individuals}, nil
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		filler, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		if tok == "ObjectSomeValuesFrom" {
			return owl.ObjectSomeValuesFrom{Property: prop, Filler: filler}, nil
		}
		return owl.ObjectAllValuesFrom{Property: prop, Filler: filler}, nil
	case "ObjectHasValue":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		value, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.ObjectHasValue{Property: prop, Value: value}, nil
	case "ObjectMinCardinality", "ObjectMaxCardinality", "ObjectExactCardinality":
		return p.parseCardinality(owl.CardinalityKind(tok))
	}
	iri, err := p.resolve(tok, m)
	if err != nil {
		return nil, err
	}
	return owl.NamedClass{IRI: iri}, nil
}

// parseCardinality reads (bound property filler?) after a cardinality
// keyword. The filler is optional; an unqualified restriction omits it.
func (p *parser) parseCardinality(kind owl.CardinalityKind) (owl.ClassExpression, error) {
	if err := p.cur.expect('('); err != nil {
		return nil, err
	}
	p.cur.skipSpace()
	boundTok := p.cur.readToken()
	bound, err := strconv.Atoi(boundTok)
	if err != nil || bound < 0 {
		return nil, p.cur.errf("expected non-negative cardinality bound, found %q", boundTok)
	}
	prop, err := p.parseObjectPropertyExpression()
	if err != nil {
		return nil, err
	}
	ce := owl.ObjectCardinality{Kind: kind, Bound: bound, Property: prop}
	p.cur.skipSpace()
	if p.cur.peek() != ')' {
		filler, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		ce.Filler = filler
	}
	if err := p.cur.expect(')'); err != nil {
		return nil, err
	}
	return ce, nil
}

// parseDataRange reads one data range. Compound keywords open their own
// operand lists; anything else is a bare IRI wrapped as a named
// datatype.
func (p *parser) parseDataRange() (owl.DataRange, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owl.NamedDatatype{IRI: iri}, nil
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return nil, p.cur.errf("expected data range")
	}
	switch tok {
	case "DataIntersectionOf", "DataUnionOf":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		var operands []owl.DataRange
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			if p.cur.eof() {
				return nil, p.cur.errf("unexpected end of input, expected %q", ")")
			}
			dr, err := p.parseDataRange()
			if err != nil {
				return nil, err
			}
			operands = append(operands, dr)
		}
		if len(operands) < 2 {
			return nil, p.cur.errf("%s needs at least two operands", tok)
		}
		p.cur.next() // ')'
		if tok == "DataIntersectionOf" {
			return owl.DataIntersectionOf{Operands: operands}, nil
		}
		return owl.DataUnionOf{Operands: operands}, nil
	case "DataComplementOf":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		operand, err := p.parseDataRange()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.DataComplementOf{Operand: operand}, nil
	case "DataOneOf":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		var literals []owl.Literal
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			literals = append(literals, lit)
		}
		if len(literals) == 0 {
			return nil, p.cur.errf("DataOneOf needs at least one literal")
		}
		p.cur.next() // ')'
		return owl.DataOneOf{Literals: literals}, nil
	case "DatatypeRestriction":
		if err := p.cur.expect('('); err != nil {
			return nil, err
		}
		dtIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		var restrictions []owl.FacetRestriction
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			facet, err := p.parseIRI()
			if err != nil {
				return nil, err
			}
			value, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			restrictions = append(restrictions, owl.FacetRestriction{Facet: facet, Value: value})
		}
		if len(restrictions) == 0 {
			return nil, p.cur.errf("DatatypeRestriction needs at least one facet restriction")
		}
		p.cur.next() // ')'
		return owl.DatatypeRestriction{
			Datatype:     owl.NamedDatatype{IRI: dtIRI},
			Restrictions: restrictions,
		}, nil
	}
	iri, err := p.resolve(tok, m)
	if err != nil {
		return nil, err
	}
	return owl.NamedDatatype{IRI: iri}, nil
}

// parseLiteral reads a quoted lexical form with an optional ^^datatype
// or @lang suffix. The suffixes are mutually exclusive and must follow
// the closing quote directly.
func (p *parser) parseLiteral() (owl.Literal, error) {
	p.cur.skipSpace()
	lexical, err := p.cur.readQuoted()
	if err != nil {
		return owl.Literal{}, err
	}
	switch {
	case strings.HasPrefix(p.cur.input[p.cur.pos:], "^^"):
		p.cur.next()
		p.cur.next()
		datatype, err := p.parseIRI()
		if err != nil {
			return owl.Literal{}, err
		}
		return owl.NewTypedLiteral(lexical, datatype), nil
	case p.cur.peek() == '@':
		p.cur.next()
		tag, err := p.cur.readLangTag()
		if err != nil {
			return owl.Literal{}, err
		}
		if p.cfg.strictLang {
			if _, err := language.Parse(tag); err != nil {
				return owl.Literal{}, p.cur.errf("invalid language tag %q", tag)
			}
		}
		return owl.NewLangLiteral(lexical, tag), nil
	default:
		return owl.NewLiteral(lexical), nil
	}
}
