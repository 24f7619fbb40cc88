package benchmark

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project tool configuration file,
// searched upward from the working directory.
const ConfigFileName = "bench.yml"

// DefaultTrainer is the trainer argv used when no config file overrides it.
var DefaultTrainer = []string{"python", "-m", "imitation.scripts.train"}

// Config holds the tool settings that the CLI does not expose as flags.
type Config struct {
	// Trainer is the argv prefix of the external trainer command.
	Trainer []string `yaml:"trainer,omitempty"`

	// MaxParallel overrides the default concurrency cap when positive.
	MaxParallel int `yaml:"max_parallel,omitempty"`
}

// FindConfigFile walks up from startDir looking for a bench.yml. It returns
// an empty path, not an error, when no config file exists.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadConfig reads a config file, filling defaults for unset fields.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if len(cfg.Trainer) == 0 {
		cfg.Trainer = DefaultTrainer
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = DefaultMaxParallel()
	}

	return cfg, nil
}
