package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/owlf/internal/functional"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	*RootOptions
	StrictPrefixes bool
	StrictLang     bool
}

// ParseReport is the parse command's payload.
type ParseReport struct {
	OntologyIRI string          `json:"ontology_iri,omitempty"`
	VersionIRI  string          `json:"version_iri,omitempty"`
	Imports     []string        `json:"imports,omitempty"`
	AxiomCount  int             `json:"axiom_count"`
	Kinds       map[string]int  `json:"kinds,omitempty"`
	Skipped     []SkippedReport `json:"skipped,omitempty"`
}

// SkippedReport describes one skipped construct.
type SkippedReport struct {
	Keyword string `json:"keyword"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Functional-Syntax document and report its contents",
		Long: `Parse an OWL2 Functional-Syntax document and report the ontology IRI,
imports, axiom counts per kind, and any constructs that were skipped because
the object model does not represent them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.StrictPrefixes, "strict-prefixes", false, "treat undeclared prefixes as errors")
	cmd.Flags().BoolVar(&opts.StrictLang, "strict-lang", false, "validate language tags against BCP 47")

	return cmd
}

func parserOptions(strictPrefixes, strictLang bool) []functional.Option {
	var opts []functional.Option
	if strictPrefixes {
		opts = append(opts, functional.WithStrictPrefixes())
	}
	if strictLang {
		opts = append(opts, functional.WithStrictLanguageTags())
	}
	return opts
}

func runParse(opts *ParseOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := functional.ParseDocumentFile(path, parserOptions(opts.StrictPrefixes, opts.StrictLang)...)
	if err != nil {
		return reportParseFailure(formatter, err)
	}

	onto := result.Ontology
	report := ParseReport{
		OntologyIRI: string(onto.IRI),
		VersionIRI:  string(onto.VersionIRI),
		AxiomCount:  onto.AxiomCount(),
		Kinds:       onto.CountByKind(),
	}
	for _, imp := range onto.Imports() {
		report.Imports = append(report.Imports, string(imp))
	}
	for _, sk := range result.Skipped {
		report.Skipped = append(report.Skipped, SkippedReport{Keyword: sk.Keyword, Line: sk.Line, Column: sk.Column})
	}

	if opts.Format == "json" {
		return formatter.JSON(report)
	}

	if report.OntologyIRI != "" {
		formatter.Textf("Ontology: %s\n", report.OntologyIRI)
	}
	if report.VersionIRI != "" {
		formatter.Textf("Version:  %s\n", report.VersionIRI)
	}
	for _, imp := range report.Imports {
		formatter.Textf("Import:   %s\n", imp)
	}
	formatter.Textf("Axioms:   %d\n", report.AxiomCount)
	for _, kind := range sortedKinds(report.Kinds) {
		formatter.Textf("  %-32s %d\n", kind, report.Kinds[kind])
	}
	for _, sk := range report.Skipped {
		formatter.Textf("Skipped:  %s at line %d, column %d\n", sk.Keyword, sk.Line, sk.Column)
	}
	return nil
}

// reportParseFailure renders a parse or file failure and converts it to
// an ExitError with the right exit code.
func reportParseFailure(formatter *OutputFormatter, err error) error {
	code := ErrCodeParse
	exit := ExitFailure
	if functional.IsFileError(err) {
		code = ErrCodeNotFound
		exit = ExitCommandError
	}
	_ = formatter.Error(code, err.Error(), nil)
	return &ExitError{Code: exit, Message: err.Error(), Err: err}
}

func sortedKinds(kinds map[string]int) []string {
	keys := make([]string, 0, len(kinds))
	for k := range kinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
