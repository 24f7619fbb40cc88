package benchmark

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"
)

// AnalyzeOptions selects which trainer run directories to report on.
type AnalyzeOptions struct {
	// SourceDir holds file-storage observer subdirectories written by the
	// trainer, one per run.
	SourceDir string

	// RunName, when set, keeps only runs whose experiment name matches.
	RunName string
}

// RunRow is one analyzed training run.
type RunRow struct {
	UseGail             bool
	EnvName             string
	NExpertDemos        int
	RunName             string
	ExpertReturnSummary string
	ImitReturnSummary   string
	ImitVsExpertReturn  float64
	ImitReturnMean      float64
	ImitReturnStdDev    float64
}

// sacredRun mirrors the run.json the trainer's file-storage observer writes.
type sacredRun struct {
	Experiment struct {
		Name string `json:"name"`
	} `json:"experiment"`
	Result struct {
		ExpertStats map[string]float64 `json:"expert_stats"`
		ImitStats   map[string]float64 `json:"imit_stats"`
	} `json:"result"`
}

// sacredConfig mirrors the matching config.json.
type sacredConfig struct {
	EnvName           string `json:"env_name"`
	NExpertDemos      int    `json:"n_expert_demos"`
	InitTrainerKwargs struct {
		UseGail bool `json:"use_gail"`
	} `json:"init_trainer_kwargs"`
}

// Analyze loads every run directory under opts.SourceDir and extracts one
// row per run, sorted by directory path. Statistics are read as the trainer
// recorded them; nothing is recomputed here.
func Analyze(opts AnalyzeOptions) ([]RunRow, error) {
	dirs, err := runDirs(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	var rows []RunRow
	for _, dir := range dirs {
		var run sacredRun
		if err := readJSON(filepath.Join(dir, "run.json"), &run); err != nil {
			return nil, err
		}
		if opts.RunName != "" && run.Experiment.Name != opts.RunName {
			continue
		}

		var cfg sacredConfig
		if err := readJSON(filepath.Join(dir, "config.json"), &cfg); err != nil {
			return nil, err
		}

		expert := run.Result.ExpertStats
		imit := run.Result.ImitStats
		rows = append(rows, RunRow{
			UseGail:             cfg.InitTrainerKwargs.UseGail,
			EnvName:             cfg.EnvName,
			NExpertDemos:        cfg.NExpertDemos,
			RunName:             run.Experiment.Name,
			ExpertReturnSummary: rewardSummary(expert, ""),
			ImitReturnSummary:   rewardSummary(imit, "monitor_"),
			ImitVsExpertReturn:  expert["reward_mean"] / imit["monitor_reward_mean"],
			ImitReturnMean:      imit["monitor_reward_mean"],
			ImitReturnStdDev:    imit["monitor_reward_std"],
		})
	}

	return rows, nil
}

// runDirs finds the observer subdirectories: directories holding a
// run.json, skipping the shared _sources directory.
func runDirs(sourceDir string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "_sources" {
			return fs.SkipDir
		}
		if !d.IsDir() && d.Name() == "run.json" {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan source directory: %w", err)
	}

	sort.Strings(dirs)
	return dirs, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// rewardSummary formats recorded reward statistics as "mean ± std (n=...)",
// keeping the layout the trainer's own analysis used.
func rewardSummary(stats map[string]float64, prefix string) string {
	return fmt.Sprintf("%.4g ± %.4g (n=%d)",
		stats[prefix+"reward_mean"],
		stats[prefix+"reward_std"],
		int(stats["n_traj"]))
}

var analyzeHeader = []string{
	"use_gail", "env_name", "n_expert_demos", "run_name",
	"expert_return_summary", "imit_return_summary",
	"imit_vs_expert_return", "imit_return_mean", "imit_return_std_dev",
}

func (r RunRow) record() []string {
	return []string{
		strconv.FormatBool(r.UseGail),
		r.EnvName,
		strconv.Itoa(r.NExpertDemos),
		r.RunName,
		r.ExpertReturnSummary,
		r.ImitReturnSummary,
		strconv.FormatFloat(r.ImitVsExpertReturn, 'g', -1, 64),
		strconv.FormatFloat(r.ImitReturnMean, 'g', -1, 64),
		strconv.FormatFloat(r.ImitReturnStdDev, 'g', -1, 64),
	}
}

// WriteCSV writes the analysis rows with a header record.
func WriteCSV(w io.Writer, rows []RunRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(analyzeHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable prints the rows as an aligned console table.
func WriteTable(w io.Writer, rows []RunRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, col := range analyzeHeader {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		for i, field := range row.record() {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, field)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
