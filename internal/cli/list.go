package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/owlf/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	DBPath string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List ontologies in the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "owlf.db", "catalog database path")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: err.Error(), Err: err}
	}
	defer st.Close()

	summaries, err := st.ListOntologies(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: err.Error(), Err: err}
	}

	if opts.Format == "json" {
		return formatter.JSON(summaries)
	}

	if len(summaries) == 0 {
		formatter.Textf("catalog is empty\n")
		return nil
	}
	for _, s := range summaries {
		iri := s.IRI
		if iri == "" {
			iri = "(anonymous)"
		}
		formatter.Textf("%s  %s  %d axioms  %s\n", s.ID, iri, s.AxiomCount, s.Source)
	}
	return nil
}
