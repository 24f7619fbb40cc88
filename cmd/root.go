package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/imitation-bench/pkg/benchmark"
)

var debugLogging bool

// NewRootCmd builds the imit-bench command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "imit-bench",
		Short:        "Run imitation-learning benchmark grids and summarize their results",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewSummarizeCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func newLogger() benchmark.Logger {
	level := logrus.InfoLevel
	if debugLogging {
		level = logrus.DebugLevel
	}
	return benchmark.NewDefaultLogger(level)
}
