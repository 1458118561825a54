package functional

import (
	"fmt"
	"os"
	"strings"

	"github.com/roach88/owlf/internal/owl"
)

// Option configures a single parse call.
type Option func(*config)

type config struct {
	strictPrefixes bool
	strictLang     bool
}

// WithStrictPrefixes makes an abbreviated IRI with an undeclared prefix
// a positioned parse error. By default such tokens pass through
// verbatim, for compatibility with documents that rely on the lenient
// behavior.
func WithStrictPrefixes() Option {
	return func(c *config) { c.strictPrefixes = true }
}

// WithStrictLanguageTags validates literal language tags against BCP 47
// instead of accepting any run of letters, digits, and hyphens.
func WithStrictLanguageTags() Option {
	return func(c *config) { c.strictLang = true }
}

// SkippedConstruct records one recognized-but-unmodeled form the parser
// skipped, with the position of its keyword.
type SkippedConstruct struct {
	Keyword string
	Line    int
	Column  int
}

// Result is the outcome of a successful parse: the ontology plus the
// list of constructs that were skipped rather than modeled. An empty
// Skipped list means the document was fully represented.
type Result struct {
	Ontology *owl.Ontology
	Skipped  []SkippedConstruct
}

// Parse parses an in-memory Functional-Syntax document.
func Parse(input string, opts ...Option) (*owl.Ontology, error) {
	res, err := ParseDocument(input, opts...)
	if err != nil {
		return nil, err
	}
	return res.Ontology, nil
}

// ParseFile reads path into memory and parses it. An unreadable file
// yields a *FileError before any parsing begins.
func ParseFile(path string, opts ...Option) (*owl.Ontology, error) {
	res, err := ParseDocumentFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return res.Ontology, nil
}

// ParseDocument parses an in-memory document and returns the ontology
// together with skip diagnostics.
func ParseDocument(input string, opts ...Option) (*Result, error) {
	p := newParser(input, opts...)
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	return &Result{Ontology: p.onto, Skipped: p.skipped}, nil
}

// ParseDocumentFile is ParseDocument over a file's contents.
func ParseDocumentFile(path string, opts ...Option) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return ParseDocument(string(data), opts...)
}

// parser holds the per-call state of one parse: the cursor, the options,
// the ontology being built, and the skip diagnostics. Never reused
// across documents.
type parser struct {
	cur     *cursor
	cfg     config
	onto    *owl.Ontology
	skipped []SkippedConstruct
}

func newParser(input string, opts ...Option) *parser {
	p := &parser{cur: newCursor(input), onto: owl.NewOntology()}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

// parseDocument is the top production: Prefix* Ontology, then EOF.
func (p *parser) parseDocument() error {
	for {
		p.cur.skipSpace()
		if p.cur.eof() {
			return p.cur.errf("unexpected end of input, expected %q", "Ontology")
		}
		tok := p.cur.readToken()
		switch tok {
		case "Prefix":
			if err := p.parsePrefix(); err != nil {
				return err
			}
		case "Ontology":
			if err := p.parseOntology(); err != nil {
				return err
			}
			p.cur.skipSpace()
			if !p.cur.eof() {
				return p.cur.errf("unexpected content after ontology")
			}
			return nil
		default:
			return p.cur.errf("expected %q or %q, found %q", "Prefix", "Ontology", tok)
		}
	}
}

// parsePrefix parses Prefix(name:=<iri>) after the keyword. The prefix
// is inserted immediately: declarations are usable by everything that
// follows, and only by what follows.
func (p *parser) parsePrefix() error {
	if err := p.cur.expect('('); err != nil {
		return err
	}
	name := p.cur.readToken()
	if !strings.HasSuffix(name, ":") {
		return p.cur.errf("prefix name must end in %q", ":")
	}
	if err := p.cur.expect('='); err != nil {
		return err
	}
	ns, err := p.cur.readIRIRef()
	if err != nil {
		return err
	}
	if err := p.cur.expect(')'); err != nil {
		return err
	}
	p.onto.Prefixes.Set(strings.TrimSuffix(name, ":"), ns)
	return nil
}

// parseOntology parses the header and body after the Ontology keyword:
// optional ontology IRI, optional version IRI, Import clauses, ontology
// annotations, then axioms until the matching close paren.
func (p *parser) parseOntology() error {
	if err := p.cur.expect('('); err != nil {
		return err
	}

	if iri, ok, err := p.tryIRI(); err != nil {
		return err
	} else if ok {
		p.onto.IRI = iri
		if ver, ok, err := p.tryIRI(); err != nil {
			return err
		} else if ok {
			p.onto.VersionIRI = ver
		}
	}

	for p.cur.match("Import") {
		if err := p.cur.expect('('); err != nil {
			return err
		}
		iri, err := p.parseIRI()
		if err != nil {
			return err
		}
		if err := p.cur.expect(')'); err != nil {
			return err
		}
		p.onto.AddImport(iri)
	}

	for {
		p.cur.skipSpace()
		if p.cur.peek() == ')' {
			p.cur.next()
			return nil
		}
		if p.cur.eof() {
			return p.cur.errf("unexpected end of input, expected %q", ")")
		}
		line, col := p.cur.line, p.cur.col
		tok := p.cur.readToken()
		if tok == "" {
			return p.cur.errf("expected axiom keyword, found %q", string(p.cur.peek()))
		}
		if tok == "Annotation" {
			ann, err := p.parseAnnotation()
			if err != nil {
				return err
			}
			p.onto.Annotations = append(p.onto.Annotations, ann)
			continue
		}
		if skippedKeywords[tok] {
			if err := p.skipBalanced(); err != nil {
				return err
			}
			p.skipped = append(p.skipped, SkippedConstruct{Keyword: tok, Line: line, Column: col})
			continue
		}
		axiom, skip, err := p.parseAxiom(tok)
		if err != nil {
			return err
		}
		if skip != nil {
			p.skipped = append(p.skipped, SkippedConstruct{Keyword: skip.Keyword, Line: line, Column: col})
			continue
		}
		p.onto.AddAxiom(axiom)
	}
}

// tryIRI attempts to read a bare IRI token (angle-bracketed or
// abbreviated) without committing: when the upcoming token is a grammar
// keyword instead, the cursor is rolled back and ok is false.
func (p *parser) tryIRI() (owl.IRI, bool, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		s, err := p.cur.readIRIRef()
		if err != nil {
			return "", false, err
		}
		return owl.IRI(s), true, nil
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" || tok == "Import" || tok == "Annotation" || isAxiomKeyword(tok) {
		p.cur.restore(m)
		return "", false, nil
	}
	iri, err := p.resolve(tok, m)
	if err != nil {
		return "", false, err
	}
	return iri, true, nil
}

// parseIRI reads a required IRI: <...> verbatim, or an abbreviated name
// expanded against the prefix table.
func (p *parser) parseIRI() (owl.IRI, error) {
	p.cur.skipSpace()
	if p.cur.peek() == '<' {
		s, err := p.cur.readIRIRef()
		if err != nil {
			return "", err
		}
		return owl.IRI(s), nil
	}
	m := p.cur.save()
	tok := p.cur.readToken()
	if tok == "" {
		return "", p.cur.errf("expected IRI")
	}
	return p.resolve(tok, m)
}

// resolve expands an abbreviated name. Under the default lenient mode an
// undeclared prefix degrades to the unexpanded token; WithStrictPrefixes
// turns it into an error at the token's position.
func (p *parser) resolve(tok string, at mark) (owl.IRI, error) {
	iri, ok := p.onto.Prefixes.Resolve(tok)
	if !ok && p.cfg.strictPrefixes && strings.Contains(tok, ":") {
		return "", &ParseError{Line: at.line, Column: at.col,
			Message: fmt.Sprintf("undeclared prefix in %q", tok)}
	}
	return iri, nil
}

// skipBalanced consumes one parenthesized form, respecting quoted
// strings, angle-bracketed IRIs, and comments so parentheses inside them
// do not count.
func (p *parser) skipBalanced() error {
	if err := p.cur.expect('('); err != nil {
		return err
	}
	return p.skipToClose()
}
