package benchmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"

	pkgexec "github.com/mattsolo1/imitation-bench/pkg/exec"
)

// Report summarizes a dispatch pass. Per-job failures are collected here
// rather than aborting the run: a failed job only affects its own entry.
type Report struct {
	Total  int
	Failed int

	mu   sync.Mutex
	errs []error
}

func (r *Report) recordFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed++
	r.errs = append(r.errs, err)
}

// Err returns the joined per-job errors, or nil when every job succeeded.
func (r *Report) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.errs...)
}

// JobRunner dispatches a set of jobs and reports their outcomes.
type JobRunner interface {
	Run(ctx context.Context, jobs []*JobSpec) (*Report, error)
}

// DefaultMaxParallel caps concurrency at a quarter of the available
// execution units, matching the budget the trainer jobs are sized for.
func DefaultMaxParallel() int {
	n := runtime.NumCPU() / 4
	if n < 1 {
		n = 1
	}
	return n
}

// PoolRunner runs jobs through a bounded worker pool. Jobs are independent
// child processes: one failing never cancels its siblings, and each job's
// stdout/stderr land in its own result directory.
type PoolRunner struct {
	// Trainer is the argv prefix of the external trainer command.
	Trainer []string

	Executor    pkgexec.CommandExecutor
	MaxParallel int
	Logger      Logger

	// Progress receives coarse per-job progress lines. Nil disables them.
	Progress io.Writer

	progressMu sync.Mutex
}

// NewPoolRunner creates a runner with the default concurrency cap.
func NewPoolRunner(trainer []string, executor pkgexec.CommandExecutor, logger Logger) *PoolRunner {
	return &PoolRunner{
		Trainer:     trainer,
		Executor:    executor,
		MaxParallel: DefaultMaxParallel(),
		Logger:      logger,
	}
}

// Run dispatches all jobs and waits for them to finish. The returned error
// covers dispatch-level problems only; per-job failures are in the Report.
func (r *PoolRunner) Run(ctx context.Context, jobs []*JobSpec) (*Report, error) {
	if len(r.Trainer) == 0 {
		return nil, fmt.Errorf("no trainer command configured")
	}

	maxParallel := r.MaxParallel
	if maxParallel < 1 {
		maxParallel = 1
	}

	runID := "run-" + uuid.New().String()[:8]
	r.Logger.Info("Dispatching benchmark jobs",
		"run_id", runID,
		"jobs", len(jobs),
		"max_parallel", maxParallel)

	report := &Report{Total: len(jobs)}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallel)

	done := 0
	var doneMu sync.Mutex

	for _, job := range jobs {
		wg.Add(1)
		go func(j *JobSpec) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			err := r.runJob(ctx, j)

			doneMu.Lock()
			done++
			n := done
			doneMu.Unlock()

			if err != nil {
				report.recordFailure(fmt.Errorf("job %s seed=%d: %w", j.EnvConfigName, j.Seed, err))
				r.Logger.Error("Job failed",
					"run_id", runID,
					"env", j.EnvConfigName,
					"seed", j.Seed,
					"error", err)
				r.progress(color.New(color.FgRed), "FAIL", j, n, len(jobs))
			} else {
				r.Logger.Debug("Job completed",
					"run_id", runID,
					"env", j.EnvConfigName,
					"seed", j.Seed)
				r.progress(color.New(color.FgGreen), "ok", j, n, len(jobs))
			}
		}(job)
	}

	wg.Wait()
	return report, nil
}

// runJob runs a single trainer invocation, capturing stdout and stderr
// into the job's result directory.
func (r *PoolRunner) runJob(ctx context.Context, job *JobSpec) error {
	dir := job.ResultDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create result directory: %w", err)
	}

	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		return fmt.Errorf("create stdout capture: %w", err)
	}
	defer stdout.Close()

	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		return fmt.Errorf("create stderr capture: %w", err)
	}
	defer stderr.Close()

	return r.Executor.Execute(ctx, pkgexec.Command{
		Name:   r.Trainer[0],
		Args:   append(append([]string{}, r.Trainer[1:]...), job.Args()...),
		Stdout: stdout,
		Stderr: stderr,
	})
}

func (r *PoolRunner) progress(c *color.Color, status string, job *JobSpec, done, total int) {
	if r.Progress == nil {
		return
	}
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	c.Fprintf(r.Progress, "[%s] ", status)
	fmt.Fprintf(r.Progress, "%s seed=%d (%d/%d)\n", job.EnvConfigName, job.Seed, done, total)
}
