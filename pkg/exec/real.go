package exec

import (
	"context"
	"fmt"
	"os/exec"
)

// ExecError wraps an execution error with the command output
type ExecError struct {
	Err    error
	Output string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Output)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// RealCommandExecutor implements CommandExecutor using the actual os/exec package.
// This is the production implementation that executes real system commands.
type RealCommandExecutor struct{}

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable.
func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Execute runs the command and waits for it to complete.
func (e *RealCommandExecutor) Execute(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	if cmd.Stdout == nil && cmd.Stderr == nil {
		// Capture the output so it can be included in error messages
		output, err := c.CombinedOutput()
		if err != nil {
			return &ExecError{
				Err:    err,
				Output: string(output),
			}
		}
		return nil
	}

	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr
	return c.Run()
}
