package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/imitation-bench/pkg/benchmark"
	"github.com/mattsolo1/imitation-bench/pkg/state"
)

// NewSummarizeCmd builds the standalone result summarizer command.
func NewSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [log-root]",
		Short: "Print the filtered tail of every job capture under a run's log root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var logRoot string
			if len(args) > 0 {
				logRoot = args[0]
			} else {
				lastRun, err := state.GetLastRun()
				if err != nil {
					return fmt.Errorf("get last run: %w", err)
				}
				if lastRun == "" {
					return fmt.Errorf("no previous run recorded; pass a log root explicitly")
				}
				logRoot = lastRun
			}

			return benchmark.Summarize(cmd.OutOrStdout(), logRoot)
		},
	}
}
