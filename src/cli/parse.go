package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [formula...]",
		Short: "Parse formulas and print their trees",
		Long: `Parses each formula and prints it followed by its tree, or
"Failed to parse the input". Without arguments the formulas in the config
file are parsed.`,
		Example: `  formula-parser parse "!A -> B | A & C"
  formula-parser parse -o infix "(A | B) & C" "A -> B -> C"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas := args
			if len(formulas) == 0 {
				formulas = opts.config.Formulas
			}
			if len(formulas) == 0 {
				return fmt.Errorf("no formulas given, pass them as arguments or list them under 'formulas' in %s", opts.config.Path)
			}

			return printParses(cmd, opts, formulas)
		},
	}
}

func printParses(cmd *cobra.Command, opts *options, formulas []string) error {
	t := newTUI(cmd, opts)

	failed := false
	for _, formula := range formulas {
		if !t.PrintParse(formula) {
			failed = true
		}
	}

	if failed {
		return errParseFailures
	}
	return nil
}
