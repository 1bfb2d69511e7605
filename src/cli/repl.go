package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eriklarko/formula-parser/src/environment"
)

func newReplCommand(opts *options) *cobra.Command {
	var prompt bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read formulas from stdin, one per line, and print their trees",
		Long: `Reads formulas line by line until end of input, "exit" or "quit".
A prompt, and a marker pointing at parse errors, are shown when stdin is a
terminal. Use --prompt to override the detection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("prompt") {
				environment.ForceSetIsInteractive(prompt)
			}

			failures, err := newTUI(cmd, opts).Run()
			if err != nil {
				return err
			}
			slog.Debug("repl finished", "failures", failures)
			return nil
		},
	}

	cmd.Flags().BoolVar(&prompt, "prompt", false, "show the prompt even when stdin isn't a terminal")

	return cmd
}
