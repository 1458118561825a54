// Package harness runs parser conformance scenarios: YAML-defined
// documents with expectations about the parse outcome, optionally
// backed by golden files of the re-serialized ontology.
package harness

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/roach88/owlf/internal/functional"
	"github.com/roach88/owlf/internal/owl"
)

// Result is the outcome of running one scenario.
type Result struct {
	// Ontology is the parsed ontology, nil when the parse failed.
	Ontology *owl.Ontology

	// Skipped lists the constructs the parser skipped.
	Skipped []functional.SkippedConstruct

	// ParseErr is the parse failure, nil on success.
	ParseErr error

	// Failures lists every expectation that did not hold. Empty means
	// the scenario passed.
	Failures []AssertionError
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// AssertionError describes one failed expectation.
type AssertionError struct {
	Field    string
	Expected string
	Actual   string
}

func (e AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s\n  Expected: %s\n  Actual: %s", e.Field, e.Expected, e.Actual)
}

// Run parses the scenario's document and checks its expectations.
// baseDir resolves a relative DocumentFile; pass the scenario file's
// directory. The returned error is infrastructural (unreadable document
// file); expectation failures land in Result.Failures.
func Run(scenario *Scenario, baseDir string) (*Result, error) {
	var opts []functional.Option
	if scenario.Options.StrictPrefixes {
		opts = append(opts, functional.WithStrictPrefixes())
	}
	if scenario.Options.StrictLanguageTags {
		opts = append(opts, functional.WithStrictLanguageTags())
	}

	var parsed *functional.Result
	var parseErr error
	if scenario.Document != "" {
		parsed, parseErr = functional.ParseDocument(scenario.Document, opts...)
	} else {
		path := scenario.DocumentFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		parsed, parseErr = functional.ParseDocumentFile(path, opts...)
		if functional.IsFileError(parseErr) {
			return nil, parseErr
		}
	}

	result := &Result{ParseErr: parseErr}
	if parsed != nil {
		result.Ontology = parsed.Ontology
		result.Skipped = parsed.Skipped
	}
	result.Failures = evaluate(scenario.Expect, result)
	return result, nil
}

// evaluate checks the expectations against a parse outcome.
func evaluate(expect Expectations, r *Result) []AssertionError {
	var failures []AssertionError
	fail := func(field, expected, actual string) {
		failures = append(failures, AssertionError{Field: field, Expected: expected, Actual: actual})
	}

	if expect.expectsError() {
		if r.ParseErr == nil {
			fail("error", "parse failure", "parse succeeded")
			return failures
		}
		if expect.ErrorContains != "" && !strings.Contains(r.ParseErr.Error(), expect.ErrorContains) {
			fail("error_contains", fmt.Sprintf("message containing %q", expect.ErrorContains), r.ParseErr.Error())
		}
		if expect.ErrorLine != 0 {
			var pe *functional.ParseError
			if !errors.As(r.ParseErr, &pe) {
				fail("error_line", "a positioned parse error", fmt.Sprintf("%T", r.ParseErr))
			} else if pe.Line != expect.ErrorLine {
				fail("error_line", fmt.Sprintf("line %d", expect.ErrorLine), fmt.Sprintf("line %d", pe.Line))
			}
		}
		return failures
	}

	if r.ParseErr != nil {
		fail("parse", "success", r.ParseErr.Error())
		return failures
	}

	if expect.AxiomCount != nil && r.Ontology.AxiomCount() != *expect.AxiomCount {
		fail("axiom_count", fmt.Sprintf("%d", *expect.AxiomCount), fmt.Sprintf("%d", r.Ontology.AxiomCount()))
	}
	if expect.SkippedCount != nil && len(r.Skipped) != *expect.SkippedCount {
		fail("skipped_count", fmt.Sprintf("%d", *expect.SkippedCount), fmt.Sprintf("%d", len(r.Skipped)))
	}
	if expect.ImportCount != nil && len(r.Ontology.Imports()) != *expect.ImportCount {
		fail("import_count", fmt.Sprintf("%d", *expect.ImportCount), fmt.Sprintf("%d", len(r.Ontology.Imports())))
	}
	if expect.OntologyIRI != "" && string(r.Ontology.IRI) != expect.OntologyIRI {
		fail("ontology_iri", expect.OntologyIRI, string(r.Ontology.IRI))
	}
	if len(expect.Kinds) > 0 {
		counts := r.Ontology.CountByKind()
		for kind, want := range expect.Kinds {
			if counts[kind] != want {
				fail("kinds."+kind, fmt.Sprintf("%d", want), fmt.Sprintf("%d", counts[kind]))
			}
		}
	}
	return failures
}
