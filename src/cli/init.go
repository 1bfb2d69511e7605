package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eriklarko/formula-parser/src/config"
	"github.com/eriklarko/formula-parser/src/tui"
)

func newInitCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file listing the example formulas",
		Long: `Writes a config file to --config, or ./` + config.DefaultPath + `, with the
built-in example formulas and the --output format. An existing file is only
replaced with --force.`,
		Args: cobra.NoArgs,
		// the file is about to be created, there's nothing to load yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.applyVerbose()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath
			}

			_, err := os.Stat(path)
			if err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to replace it", path)
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check for config file %s: %w", path, err)
			}

			format, err := tui.ParseFormat(opts.output)
			if err != nil {
				return err
			}

			conf := &config.Config{
				Formulas: demoFormulas,
				Output:   string(format),
				Path:     path,
			}
			if err := conf.Write(); err != nil {
				return err
			}

			slog.Debug("wrote config", "path", path, "formulas", len(conf.Formulas))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing config file")

	return cmd
}
