package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eriklarko/formula-parser/src/batch"
	"github.com/eriklarko/formula-parser/src/config"
	"github.com/eriklarko/formula-parser/src/formula"
	"github.com/eriklarko/formula-parser/src/tui"
)

func newBatchCommand(opts *options) *cobra.Command {
	var formulaFile, csvFile string

	cmd := &cobra.Command{
		Use:   "batch [formula...]",
		Short: "Parse many formulas and print a YAML report",
		Long: `Parses the formulas given as arguments, read from --file (one per line,
'#' starts a comment) and listed in the config file. Prints a YAML report with
the parsed trees, the failures and a summary of the tree shapes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas := append([]string{}, args...)
			if formulaFile != "" {
				fromFile, err := config.ReadFormulaFile(formulaFile)
				if err != nil {
					return err
				}
				formulas = append(formulas, fromFile...)
			}
			formulas = append(formulas, opts.config.Formulas...)
			if len(formulas) == 0 {
				return fmt.Errorf("no formulas given")
			}

			render := (*formula.Node).String
			if opts.format == tui.FormatInfix {
				render = (*formula.Node).Infix
			}
			report := batch.New(render).Run(formulas)

			doc, err := report.Document()
			if err != nil {
				return fmt.Errorf("failed to summarize report: %w", err)
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if err := encoder.Close(); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if csvFile == "" {
				csvFile = opts.config.ResultsFile
			}
			if csvFile != "" {
				results := &config.Config{ResultsFile: csvFile}
				if err := results.WriteResultsToCSV(report.Results()); err != nil {
					return err
				}
				slog.Info("Wrote results", "file", csvFile, "formulas", len(report.Results()))
			}

			if report.HasFailures() {
				slog.Warn("Some formulas could not be parsed", "failed", report.FailedFormulas())
				return errParseFailures
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formulaFile, "file", "f", "", "file with one formula per line")
	cmd.Flags().StringVar(&csvFile, "csv", "", "also write formula,result pairs to this CSV file")

	return cmd
}
