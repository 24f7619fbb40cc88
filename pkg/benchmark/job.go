package benchmark

import (
	"path/filepath"
	"strconv"
)

// JobSpec is one trainer invocation for a specific (grid row, seed) pair.
// It carries everything needed to render the trainer argument list, so a
// spec stays valid after the RunOptions that produced it goes away.
type JobSpec struct {
	NamedOptions []string
	ExtraConfigs []string

	EnvConfigName     string
	NGenStepsPerEpoch string
	NExpertDemos      string
	RolloutPath       string
	Seed              int
	LogRoot           string
}

// RolloutPath builds the expert demonstration path for an environment:
// <expertModelsDir>/<env_config_name>_0/rollouts/final.pkl. The trainer
// expects exactly this layout.
func RolloutPath(expertModelsDir, envConfigName string) string {
	return filepath.Join(expertModelsDir, envConfigName+"_0", "rollouts", "final.pkl")
}

// Args renders the trainer argument list. The shape is fixed by the
// trainer's CLI: named options first, then the literal "with" separator,
// then named config tokens followed by key=value updates.
func (j *JobSpec) Args() []string {
	args := make([]string, 0, len(j.NamedOptions)+len(j.ExtraConfigs)+7)
	args = append(args, j.NamedOptions...)
	args = append(args, "with")
	args = append(args, j.ExtraConfigs...)
	args = append(args,
		j.EnvConfigName,
		"log_root="+j.LogRoot,
		"n_gen_steps_per_epoch="+j.NGenStepsPerEpoch,
		"rollout_path="+j.RolloutPath,
		"n_expert_demos="+j.NExpertDemos,
		"seed="+strconv.Itoa(j.Seed),
	)
	return args
}

// ResultDir is the per-job capture directory under the run's log root,
// keyed by the varying parameters the way GNU parallel's --header --results
// lays them out: parallel/env_config_name/<env>/seed/<seed>.
func (j *JobSpec) ResultDir() string {
	return filepath.Join(j.LogRoot, "parallel",
		"env_config_name", j.EnvConfigName,
		"seed", strconv.Itoa(j.Seed))
}

// Expand produces the full ordered JobSpec set for a run: the Cartesian
// product of grid rows and seeds, rows outer and seeds inner.
func Expand(opts RunOptions, rows []Row) []*JobSpec {
	jobs := make([]*JobSpec, 0, len(rows)*len(opts.Seeds))
	for _, row := range rows {
		for _, seed := range opts.Seeds {
			jobs = append(jobs, &JobSpec{
				NamedOptions:      opts.NamedOptions,
				ExtraConfigs:      opts.ExtraConfigs,
				EnvConfigName:     row.EnvConfigName,
				NGenStepsPerEpoch: row.NGenStepsPerEpoch,
				NExpertDemos:      row.NExpertDemos,
				RolloutPath:       RolloutPath(opts.ExpertModelsDir, row.EnvConfigName),
				Seed:              seed,
				LogRoot:           opts.LogRoot,
			})
		}
	}
	return jobs
}
