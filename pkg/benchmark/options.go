package benchmark

import (
	"path/filepath"
	"time"
)

// Default locations for a full benchmark run.
const (
	DefaultConfigSource    = "experiments/imit_benchmark_config.csv"
	DefaultExpertModelsDir = "expert_models"
)

// Debug locations used by fast mode. They are swapped in together: the
// debug grid only makes sense against the debug expert models.
const (
	FastConfigSource    = "tests/data/imit_benchmark_config.csv"
	FastExpertModelsDir = "tests/data/expert_models"
)

// timestampLayout is a sortable ISO-8601 form, so default log roots from
// runs started in different seconds never collide.
const timestampLayout = "2006-01-02T15:04:05"

// Flags holds the raw CLI flag values for a benchmark run.
type Flags struct {
	Fast        bool
	GAIL        bool
	AIRL        bool
	RunName     string
	LogRoot     string
	FileStorage string
}

// RunOptions is the resolved, immutable configuration of one benchmark run.
type RunOptions struct {
	// ConfigSource is the CSV benchmark grid to expand.
	ConfigSource string

	// ExpertModelsDir is the root of the expert demonstration models used
	// to build per-environment rollout paths.
	ExpertModelsDir string

	// Seeds is the ordered seed list; every grid row runs once per seed.
	Seeds []int

	// NamedOptions are trainer options forwarded verbatim before the
	// "with" separator (run name, file storage observer).
	NamedOptions []string

	// ExtraConfigs are named config tokens forwarded after "with"
	// (algorithm variant, fast).
	ExtraConfigs []string

	// LogRoot is the output directory for this run.
	LogRoot string
}

// ResolveOptions turns raw flags into RunOptions. The current-time provider
// is injected so that default log roots are reproducible in tests. It is a
// pure function: the same flags and clock always yield the same options.
func ResolveOptions(f Flags, now func() time.Time) RunOptions {
	opts := RunOptions{
		ConfigSource:    DefaultConfigSource,
		ExpertModelsDir: DefaultExpertModelsDir,
		Seeds:           []int{0, 1, 2},
	}

	if f.Fast {
		opts.ConfigSource = FastConfigSource
		opts.ExpertModelsDir = FastExpertModelsDir
		opts.Seeds = []int{0}
	}

	if f.RunName != "" {
		opts.NamedOptions = append(opts.NamedOptions, "--name", f.RunName)
	}
	if f.FileStorage != "" {
		opts.NamedOptions = append(opts.NamedOptions, "--file_storage", f.FileStorage)
	}

	// gail and airl are additive, not exclusive: the trainer applies named
	// configs in order, so passing both means the latter wins there.
	if f.GAIL {
		opts.ExtraConfigs = append(opts.ExtraConfigs, "gail")
	}
	if f.AIRL {
		opts.ExtraConfigs = append(opts.ExtraConfigs, "airl")
	}
	if f.Fast {
		opts.ExtraConfigs = append(opts.ExtraConfigs, "fast")
	}

	if f.LogRoot != "" {
		opts.LogRoot = f.LogRoot
	} else {
		opts.LogRoot = filepath.Join("output", "imit_benchmark", now().Format(timestampLayout))
	}

	return opts
}
