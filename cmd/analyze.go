package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/imitation-bench/pkg/benchmark"
)

// NewAnalyzeCmd builds the run-directory analysis command.
func NewAnalyzeCmd() *cobra.Command {
	var opts benchmark.AnalyzeOptions
	var csvOutputPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Tabulate trainer results from file-storage observer run directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			rows, err := benchmark.Analyze(opts)
			if err != nil {
				return err
			}
			logger.Debug("Analyzed run directories",
				"source_dir", opts.SourceDir,
				"runs", len(rows))

			if csvOutputPath != "" {
				f, err := os.Create(csvOutputPath)
				if err != nil {
					return fmt.Errorf("create csv output: %w", err)
				}
				defer f.Close()
				if err := benchmark.WriteCSV(f, rows); err != nil {
					return err
				}
			}

			if verbose || csvOutputPath == "" {
				if err := benchmark.WriteTable(cmd.OutOrStdout(), rows); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SourceDir, "source_dir", "", "Directory of trainer run subdirectories to analyze")
	cmd.Flags().StringVar(&opts.RunName, "run_name", "", "Only analyze runs with this experiment name")
	cmd.Flags().StringVar(&csvOutputPath, "csv_output_path", "", "Write the analysis table to this CSV file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print the table even when writing CSV")
	cmd.MarkFlagRequired("source_dir")

	return cmd
}
