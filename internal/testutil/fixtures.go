// Package testutil provides shared fixtures for parser, store, and CLI
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/owlf/internal/functional"
	"github.com/roach88/owlf/internal/owl"
)

// SampleDocument is a small well-formed Functional-Syntax document used
// across packages: two class declarations, a subclass axiom, and an
// annotated assertion.
const SampleDocument = `Prefix(ex:=<http://example.org/>)
Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Ontology(<http://example.org/sample>
Declaration(Class(ex:Disease))
Declaration(Class(ex:Alzheimers))
SubClassOf(ex:Alzheimers ex:Disease)
Declaration(NamedIndividual(ex:patient1))
ClassAssertion(ex:Alzheimers ex:patient1)
DataPropertyAssertion(ex:age ex:patient1 "65"^^xsd:integer)
)
`

// MustParse parses a document or fails the test.
func MustParse(t *testing.T, document string, opts ...functional.Option) *owl.Ontology {
	t.Helper()
	onto, err := functional.Parse(document, opts...)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return onto
}

// WriteDocument writes a document into a temp file and returns its path.
func WriteDocument(t *testing.T, document string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.ofn")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
