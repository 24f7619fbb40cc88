package exec

import (
	"context"
	"io"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string

	// Stdout and Stderr receive the process output when non-nil.
	// When both are nil the combined output is captured and attached
	// to any returned error instead.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandExecutor defines an interface for running external commands.
// This abstraction allows for easier testing by providing a mockable interface.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the directories
	// named by the PATH environment variable.
	LookPath(file string) (string, error)

	// Execute runs the command, waits for it to complete and returns
	// any error. The context cancels the running process.
	Execute(ctx context.Context, cmd Command) error
}
