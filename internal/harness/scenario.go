package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one parser conformance case: a Functional-Syntax
// document plus expectations about the parse outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name for golden comparisons.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Document is the inline document text. Exactly one of Document
	// and DocumentFile must be set.
	Document string `yaml:"document,omitempty"`

	// DocumentFile is a document path relative to the scenario file.
	DocumentFile string `yaml:"document_file,omitempty"`

	// Options selects parser options for the run.
	Options OptionSet `yaml:"options,omitempty"`

	// Expect holds the expectations to check after parsing.
	Expect Expectations `yaml:"expect"`
}

// OptionSet mirrors the parser options a scenario can switch on.
type OptionSet struct {
	StrictPrefixes     bool `yaml:"strict_prefixes,omitempty"`
	StrictLanguageTags bool `yaml:"strict_language_tags,omitempty"`
}

// Expectations describes the expected parse outcome. Zero-valued fields
// are not checked; pointer fields distinguish "expect zero" from
// "don't care".
type Expectations struct {
	// AxiomCount is the expected number of modeled axioms.
	AxiomCount *int `yaml:"axiom_count,omitempty"`

	// SkippedCount is the expected number of skipped constructs.
	SkippedCount *int `yaml:"skipped_count,omitempty"`

	// ImportCount is the expected number of import IRIs.
	ImportCount *int `yaml:"import_count,omitempty"`

	// OntologyIRI is the expected ontology IRI.
	OntologyIRI string `yaml:"ontology_iri,omitempty"`

	// Kinds maps axiom keywords to expected counts (subset check).
	Kinds map[string]int `yaml:"kinds,omitempty"`

	// ErrorContains expects the parse to fail with a message containing
	// this substring. When set, the success expectations above must be
	// absent.
	ErrorContains string `yaml:"error_contains,omitempty"`

	// ErrorLine is the expected 1-based line of the parse error.
	// Only meaningful together with ErrorContains.
	ErrorLine int `yaml:"error_line,omitempty"`
}

// expectsError reports whether the scenario expects the parse to fail.
func (e Expectations) expectsError() bool {
	return e.ErrorContains != "" || e.ErrorLine != 0
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly instead of silently not asserting.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if (s.Document == "") == (s.DocumentFile == "") {
		return fmt.Errorf("exactly one of document and document_file is required")
	}
	if s.Expect.expectsError() {
		e := s.Expect
		if e.AxiomCount != nil || e.SkippedCount != nil || e.ImportCount != nil ||
			e.OntologyIRI != "" || len(e.Kinds) > 0 {
			return fmt.Errorf("error expectations cannot be combined with success expectations")
		}
	}
	return nil
}
