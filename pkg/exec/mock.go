package exec

import (
	"context"
	"strings"
	"sync"
)

// MockCommandExecutor is a mock implementation of CommandExecutor for testing.
// It records all commands that would be executed without actually running them.
// It is safe for concurrent use.
type MockCommandExecutor struct {
	mu sync.Mutex

	// Commands records all commands that were executed
	Commands []string

	// Specs records the full Command values, in execution order
	Specs []Command

	// Stdout is written to each command's Stdout writer, when set
	Stdout string

	// LookPathFunc allows custom behavior for LookPath in tests
	LookPathFunc func(file string) (string, error)

	// ExecuteFunc allows custom behavior for Execute in tests
	ExecuteFunc func(ctx context.Context, cmd Command) error
}

// LookPath implements the CommandExecutor interface for testing.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	// By default, assume commands exist
	return "/path/to/" + file, nil
}

// Execute implements the CommandExecutor interface for testing.
// It records the command that would be executed.
func (m *MockCommandExecutor) Execute(ctx context.Context, cmd Command) error {
	cmdStr := cmd.Name
	if len(cmd.Args) > 0 {
		cmdStr = cmd.Name + " " + strings.Join(cmd.Args, " ")
	}
	m.mu.Lock()
	m.Commands = append(m.Commands, cmdStr)
	m.Specs = append(m.Specs, cmd)
	m.mu.Unlock()

	if m.Stdout != "" && cmd.Stdout != nil {
		if _, err := cmd.Stdout.Write([]byte(m.Stdout)); err != nil {
			return err
		}
	}

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil
}
