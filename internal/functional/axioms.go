package functional

import "github.com/roach88/owlf/internal/owl"

// skipNote signals that an axiom production decided mid-parse to skip
// the whole form (a recognized operand shape the model does not carry).
type skipNote struct {
	Keyword string
}

// parseAxiom dispatches one axiom production by its keyword. The keyword
// has been consumed; the cursor is before the opening paren. Every
// production first reads the leading Annotation(...) list, per the
// grammar.
func (p *parser) parseAxiom(tok string) (owl.Axiom, *skipNote, error) {
	if tok == "Declaration" {
		ax, err := p.parseDeclaration()
		return ax, nil, err
	}
	if ch, ok := characteristicKeywords[tok]; ok {
		ax, err := p.parseCharacteristic(ch)
		return ax, nil, err
	}
	switch {
	case classAxiomKeywords[tok]:
		ax, err := p.parseClassAxiom(tok)
		return ax, nil, err
	case objectPropertyAxiomKeywords[tok]:
		return p.parseObjectPropertyAxiom(tok)
	case dataPropertyAxiomKeywords[tok]:
		ax, err := p.parseDataPropertyAxiom(tok)
		return ax, nil, err
	case assertionAxiomKeywords[tok]:
		ax, err := p.parseAssertionAxiom(tok)
		return ax, nil, err
	case annotationAxiomKeywords[tok]:
		ax, err := p.parseAnnotationAxiom(tok)
		return ax, nil, err
	default:
		return nil, nil, p.cur.errf("unknown axiom keyword %q", tok)
	}
}

// openAxiom consumes the opening paren and the leading annotation list
// shared by every axiom production.
func (p *parser) openAxiom() (owl.Annotated, error) {
	if err := p.cur.expect('('); err != nil {
		return owl.Annotated{}, err
	}
	anns, err := p.parseAnnotations()
	if err != nil {
		return owl.Annotated{}, err
	}
	return owl.Annotated{Annotations: anns}, nil
}

func (p *parser) parseDeclaration() (owl.Axiom, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, err
	}
	kindTok := p.cur.readToken()
	kind := owl.EntityKind(kindTok)
	if !owl.ValidEntityKinds[kind] {
		return nil, p.cur.errf("unknown entity kind %q in Declaration", kindTok)
	}
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
	if err := p.cur.expect(')'); err != nil {
		return nil, err
	}
	return owl.Declaration{Annotated: anns, Entity: owl.Entity{Kind: kind, IRI: iri}}, nil
}

func (p *parser) parseClassAxiom(tok string) (owl.Axiom, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "SubClassOf":
		sub, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		super, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.SubClassOf{Annotated: anns, Sub: sub, Super: super}, nil
	default:
		operands, err := p.parseClassExpressionList()
		if err != nil {
			return nil, err
		}
		if tok == "EquivalentClasses" {
			return owl.EquivalentClasses{Annotated: anns, Operands: operands}, nil
		}
		return owl.DisjointClasses{Annotated: anns, Operands: operands}, nil
	}
}

func (p *parser) parseCharacteristic(ch owl.Characteristic) (owl.Axiom, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, err
	}
	prop, err := p.parseObjectPropertyExpression()
	if err != nil {
		return nil, err
	}
	if err := p.cur.expect(')'); err != nil {
		return nil, err
	}
	return owl.ObjectPropertyCharacteristic{Annotated: anns, Characteristic: ch, Property: prop}, nil
}

func (p *parser) parseObjectPropertyAxiom(tok string) (owl.Axiom, *skipNote, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, nil, err
	}
	switch tok {
	case "SubObjectPropertyOf":
		// A property chain on the subproperty side is recognized but not
		// modeled: balance out of the whole axiom and report a skip.
		m := p.cur.save()
		if chain := p.cur.readToken(); chain == "ObjectPropertyChain" {
			if err := p.skipBalanced(); err != nil {
				return nil, nil, err
			}
			if err := p.skipToClose(); err != nil {
				return nil, nil, err
			}
			return nil, &skipNote{Keyword: "SubObjectPropertyOf"}, nil
		}
		p.cur.restore(m)
		sub, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, nil, err
		}
		super, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, nil, err
		}
		return owl.SubObjectPropertyOf{Annotated: anns, Sub: sub, Super: super}, nil, nil
	case "EquivalentObjectProperties":
		var operands []owl.ObjectPropertyExpression
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			op, err := p.parseObjectPropertyExpression()
			if err != nil {
				return nil, nil, err
			}
			operands = append(operands, op)
		}
		if len(operands) < 2 {
			return nil, nil, p.cur.errf("EquivalentObjectProperties needs at least two operands")
		}
		p.cur.next() // ')'
		return owl.EquivalentObjectProperties{Annotated: anns, Operands: operands}, nil, nil
	case "InverseObjectProperties":
		first, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, nil, err
		}
		second, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, nil, err
		}
		return owl.InverseObjectProperties{Annotated: anns, First: first, Second: second}, nil, nil
	case "ObjectPropertyDomain", "ObjectPropertyRange":
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, nil, err
		}
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, nil, err
		}
		if tok == "ObjectPropertyDomain" {
			return owl.ObjectPropertyDomain{Annotated: anns, Property: prop, Domain: ce}, nil, nil
		}
		return owl.ObjectPropertyRange{Annotated: anns, Property: prop, Range: ce}, nil, nil
	}
	return nil, nil, p.cur.errf("unknown axiom keyword %q", tok)
}

func (p *parser) parseDataPropertyAxiom(tok string) (owl.Axiom, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "SubDataPropertyOf":
		sub, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		super, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.SubDataPropertyOf{Annotated: anns, Sub: sub, Super: super}, nil
	case "EquivalentDataProperties":
		var operands []owl.IRI
		for {
			p.cur.skipSpace()
			if p.cur.peek() == ')' {
				break
			}
			iri, err := p.parseIRI()
			if err != nil {
				return nil, err
			}
			operands = append(operands, iri)
		}
		if len(operands) < 2 {
			return nil, p.cur.errf("EquivalentDataProperties needs at least two operands")
		}
		p.cur.next() // ')'
		return owl.EquivalentDataProperties{Annotated: anns, Operands: operands}, nil
	case "DataPropertyDomain":
		prop, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.DataPropertyDomain{Annotated: anns, Property: prop, Domain: ce}, nil
	case "DataPropertyRange":
		prop, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		dr, err := p.parseDataRange()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.DataPropertyRange{Annotated: anns, Property: prop, Range: dr}, nil
	case "FunctionalDataProperty":
		prop, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.FunctionalDataProperty{Annotated: anns, Property: prop}, nil
	}
	return nil, p.cur.errf("unknown axiom keyword %q", tok)
}

func (p *parser) parseAssertionAxiom(tok string) (owl.Axiom, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "SameIndividual", "DifferentIndividuals":
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
		if len(individuals) < 2 {
			return nil, p.cur.errf("%s needs at least two individuals", tok)
		}
		p.cur.next() // ')'
		if tok == "SameIndividual" {
			return owl.SameIndividual{Annotated: anns, Individuals: individuals}, nil
		}
		return owl.DifferentIndividuals{Annotated: anns, Individuals: individuals}, nil
	case "ClassAssertion":
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		ind, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.ClassAssertion{Annotated: anns, Class: ce, Individual: ind}, nil
	case "ObjectPropertyAssertion", "NegativeObjectPropertyAssertion":
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		subject, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		object, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		if tok == "ObjectPropertyAssertion" {
			return owl.ObjectPropertyAssertion{Annotated: anns, Property: prop, Subject: subject, Object: object}, nil
		}
		return owl.NegativeObjectPropertyAssertion{Annotated: anns, Property: prop, Subject: subject, Object: object}, nil
	case "DataPropertyAssertion", "NegativeDataPropertyAssertion":
		prop, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		subject, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		if tok == "DataPropertyAssertion" {
			return owl.DataPropertyAssertion{Annotated: anns, Property: prop, Subject: subject, Value: value}, nil
		}
		return owl.NegativeDataPropertyAssertion{Annotated: anns, Property: prop, Subject: subject, Value: value}, nil
	}
	return nil, p.cur.errf("unknown axiom keyword %q", tok)
}

func (p *parser) parseAnnotationAxiom(tok string) (owl.Axiom, error) {
	anns, err := p.openAxiom()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "AnnotationAssertion":
		prop, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		subject, err := p.parseAnnotationSubject()
		if err != nil {
			return nil, err
		}
		value, err := p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.AnnotationAssertion{Annotated: anns, Property: prop, Subject: subject, Value: value}, nil
	case "SubAnnotationPropertyOf":
		sub, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		super, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		return owl.SubAnnotationPropertyOf{Annotated: anns, Sub: sub, Super: super}, nil
	case "AnnotationPropertyDomain", "AnnotationPropertyRange":
		prop, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect(')'); err != nil {
			return nil, err
		}
		if tok == "AnnotationPropertyDomain" {
			return owl.AnnotationPropertyDomain{Annotated: anns, Property: prop, Domain: iri}, nil
		}
		return owl.AnnotationPropertyRange{Annotated: anns, Property: prop, Range: iri}, nil
	}
	return nil, p.cur.errf("unknown axiom keyword %q", tok)
}

// parseClassExpressionList reads class expressions up to the closing
// paren of the enclosing axiom. At least two are required.
func (p *parser) parseClassExpressionList() ([]owl.ClassExpression, error) {
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
		return nil, p.cur.errf("expected at least two class expressions")
	}
	p.cur.next() // ')'
	return operands, nil
}

// skipToClose balances out of the current axiom after its operands have
// already been partially consumed.
func (p *parser) skipToClose() error {
	depth := 1
	for depth > 0 {
		if p.cur.eof() {
			return p.cur.errf("unexpected end of input, expected %q", ")")
		}
		switch p.cur.peek() {
		case '(':
			p.cur.next()
			depth++
		case ')':
			p.cur.next()
			depth--
		case '"':
			if _, err := p.cur.readQuoted(); err != nil {
				return err
			}
		case '<':
			if _, err := p.cur.readIRIRef(); err != nil {
				return err
			}
		case '#':
			p.cur.skipSpace()
		default:
			p.cur.next()
		}
	}
	return nil
}
