package benchmark

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Row is one benchmark scenario from the grid file. Values are opaque
// strings substituted verbatim into the trainer invocation; no validation
// is performed here.
type Row struct {
	EnvConfigName     string
	NGenStepsPerEpoch string
	NExpertDemos      string
}

// The grid file must carry at least these columns, by header name.
var requiredColumns = []string{
	"env_config_name",
	"n_gen_steps_per_epoch",
	"n_expert_demos",
}

// LoadGrid reads a comma-separated benchmark grid with a header row.
// A grid with a header but no data rows yields an empty, non-nil slice.
func LoadGrid(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open benchmark grid: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse benchmark grid %s: %w", path, err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("benchmark grid %s: missing column %q", path, col)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			EnvConfigName:     rec[index["env_config_name"]],
			NGenStepsPerEpoch: rec[index["n_gen_steps_per_epoch"]],
			NExpertDemos:      rec[index["n_expert_demos"]],
		})
	}

	return rows, nil
}
