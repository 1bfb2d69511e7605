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

// errParseFailures is returned when at least one formula didn't parse. The
// failures have already been printed so Execute doesn't print it again.
var errParseFailures = errors.New("some formulas could not be parsed")

// demoFormulas are parsed when the binary is run without arguments.
var demoFormulas = []string{
	"!A -> B | A & C",
	"!A -> (B | A) & C",
}

type options struct {
	configPath string
	verbose    bool
	output     string

	config *config.Config
	format tui.Format
}

// Execute runs the CLI with os.Args.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !errors.Is(err, errParseFailures) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "formula-parser",
		Short: "Parses propositional logic formulas into expression trees",
		Long: `formula-parser turns formulas such as "!A -> B | A & C" into a binary
expression tree and prints it fully parenthesized.

Operators, loosest binding first:
  ->   implication (right-associative)
  |    disjunction (right-associative)
  &    conjunction (right-associative)
  !    negation
Variables are single characters, parentheses group.

Run without arguments to parse a couple of examples.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printParses(cmd, opts, demoFormulas)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./"+config.DefaultPath+" if it exists)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "how trees are printed: text, infix or yaml")

	rootCmd.AddCommand(
		newParseCommand(opts),
		newBatchCommand(opts),
		newReplCommand(opts),
		newInitCommand(opts),
	)

	return rootCmd
}

// load applies the global flags and reads the config file.
func (o *options) load(cmd *cobra.Command) error {
	o.applyVerbose()

	conf, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.config = conf

	output := o.output
	if !cmd.Flags().Changed("output") {
		output = o.config.Output
	}
	o.format, err = tui.ParseFormat(output)
	if err != nil {
		return err
	}

	return nil
}

func (o *options) applyVerbose() {
	if o.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// loadConfig reads the config at path. Without a path the default config is
// optional, and an empty config is used when it's missing.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}

	conf, err := config.LoadConfig(config.DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file found, using defaults", "path", config.DefaultPath)
		return &config.Config{Path: config.DefaultPath}, nil
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded config", "path", conf.Path, "formulas", len(conf.Formulas))
	return conf, nil
}

func newTUI(cmd *cobra.Command, opts *options) *tui.TUI {
	t := tui.New()
	t.SetInput(cmd.InOrStdin())
	t.SetOutput(cmd.OutOrStdout())
	t.SetFormat(opts.format)
	return t
}
