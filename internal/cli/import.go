package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/owlf/internal/functional"
	"github.com/roach88/owlf/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	DBPath         string
	StrictPrefixes bool
	StrictLang     bool
}

// ImportResult is the import command's payload.
type ImportResult struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	AxiomCount int    `json:"axiom_count"`
	Skipped    int    `json:"skipped"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "import <file>",
		Short:         "Parse a document and save it into the ontology catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "owlf.db", "catalog database path")
	cmd.Flags().BoolVar(&opts.StrictPrefixes, "strict-prefixes", false, "treat undeclared prefixes as errors")
	cmd.Flags().BoolVar(&opts.StrictLang, "strict-lang", false, "validate language tags against BCP 47")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
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
	formatter.VerboseLog("Parsed %s: %d axiom(s), %d skipped", path, result.Ontology.AxiomCount(), len(result.Skipped))

	st, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: err.Error(), Err: err}
	}
	defer st.Close()

	id, err := st.SaveOntology(cmd.Context(), result.Ontology, path)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: err.Error(), Err: err}
	}

	payload := ImportResult{
		ID:         id,
		Source:     path,
		AxiomCount: result.Ontology.AxiomCount(),
		Skipped:    len(result.Skipped),
	}
	if opts.Format == "json" {
		return formatter.JSON(payload)
	}
	formatter.Textf("Imported %s as %s (%d axioms, %d skipped)\n", path, id, payload.AxiomCount, payload.Skipped)
	return nil
}
