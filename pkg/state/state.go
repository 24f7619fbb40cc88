package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// State represents the local benchmark tool state.
type State struct {
	LastRun string `yaml:"last_run,omitempty"`
}

// stateFilePath returns the path to the state file.
func stateFilePath() (string, error) {
	// Find the git root directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}

	// Walk up the directory tree looking for .git
	dir := cwd
	for {
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			return filepath.Join(dir, ".imit-bench", "state.yml"), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .git; use the current
			// directory as fallback
			return filepath.Join(cwd, ".imit-bench", "state.yml"), nil
		}
		dir = parent
	}
}

// LoadState loads the state from the state file.
func LoadState() (*State, error) {
	path, err := stateFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty state if file doesn't exist
			return &State{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}

	return &state, nil
}

// SaveState saves the state to the state file.
func SaveState(state *State) error {
	path, err := stateFilePath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// SetLastRun records the log root of the most recent benchmark run.
func SetLastRun(logRoot string) error {
	state, err := LoadState()
	if err != nil {
		return err
	}
	state.LastRun = logRoot
	return SaveState(state)
}

// GetLastRun returns the log root of the most recent benchmark run, or an
// empty string when no run has been recorded.
func GetLastRun() (string, error) {
	state, err := LoadState()
	if err != nil {
		return "", err
	}
	return state.LastRun, nil
}
