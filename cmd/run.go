package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/imitation-bench/pkg/benchmark"
	pkgexec "github.com/mattsolo1/imitation-bench/pkg/exec"
	"github.com/mattsolo1/imitation-bench/pkg/state"
)

// NewRunCmd builds the benchmark run command.
func NewRunCmd() *cobra.Command {
	var flags benchmark.Flags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark grid across all seeds and summarize the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Fast, "fast", "f", false, "Use the debug grid and debug expert models with a single seed")
	cmd.Flags().BoolVar(&flags.GAIL, "gail", false, "Add the gail named config (additive with --airl)")
	cmd.Flags().BoolVar(&flags.AIRL, "airl", false, "Add the airl named config (additive with --gail)")
	cmd.Flags().StringVar(&flags.RunName, "run_name", "", "Experiment name forwarded to the trainer")
	cmd.Flags().StringVar(&flags.LogRoot, "log_root", "", "Output directory (default: timestamped under output/imit_benchmark)")
	cmd.Flags().StringVar(&flags.FileStorage, "file_storage", "", "File storage observer path forwarded to the trainer")

	return cmd
}

func runBenchmark(cmd *cobra.Command, flags benchmark.Flags) error {
	logger := newLogger()
	opts := benchmark.ResolveOptions(flags, time.Now)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get current directory: %w", err)
	}
	configFile, err := benchmark.FindConfigFile(cwd)
	if err != nil {
		return err
	}
	cfg, err := benchmark.LoadConfig(configFile)
	if err != nil {
		return err
	}

	rows, err := benchmark.LoadGrid(opts.ConfigSource)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logger.Info("Benchmark grid has no rows, nothing to dispatch",
			"config_source", opts.ConfigSource)
		return nil
	}

	jobs := benchmark.Expand(opts, rows)
	logger.Info("Expanded benchmark grid",
		"rows", len(rows),
		"seeds", len(opts.Seeds),
		"jobs", len(jobs),
		"log_root", opts.LogRoot)

	if err := state.SetLastRun(opts.LogRoot); err != nil {
		// The run proceeds without the convenience record.
		logger.Error("Failed to record run state", "error", err)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	runner := benchmark.NewPoolRunner(cfg.Trainer, &pkgexec.RealCommandExecutor{}, logger)
	runner.MaxParallel = cfg.MaxParallel
	runner.Progress = cmd.OutOrStdout()

	report, err := runner.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	if err := benchmark.Summarize(cmd.OutOrStdout(), opts.LogRoot); err != nil {
		return err
	}

	if report.Failed > 0 {
		return fmt.Errorf("benchmark completed with %d failed jobs", report.Failed)
	}
	return nil
}
