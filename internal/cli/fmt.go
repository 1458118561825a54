package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/owlf/internal/functional"
)

// NewFmtCommand creates the fmt command: parse a document and print its
// canonical rendering. Whitespace and comments are normalized away; the
// axioms themselves are preserved exactly.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fmt <file>",
		Short:         "Reformat a Functional-Syntax document canonically",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			onto, err := functional.ParseFile(args[0])
			if err != nil {
				return reportParseFailure(formatter, err)
			}
			return functional.Write(cmd.OutOrStdout(), onto)
		},
	}
	return cmd
}
