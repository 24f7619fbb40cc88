package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGrid(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadGrid(t *testing.T) {
	path := writeGrid(t, "env_config_name,n_gen_steps_per_epoch,n_expert_demos\n"+
		"cartpole,2048,10\n"+
		"pendulum,4096,20\n")

	rows, err := LoadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{EnvConfigName: "cartpole", NGenStepsPerEpoch: "2048", NExpertDemos: "10"},
		{EnvConfigName: "pendulum", NGenStepsPerEpoch: "4096", NExpertDemos: "20"},
	}, rows)
}

func TestLoadGridColumnOrderIndependent(t *testing.T) {
	// Extra columns and reordered headers are fine; fields are found by name
	path := writeGrid(t, "n_expert_demos,notes,env_config_name,n_gen_steps_per_epoch\n"+
		"10,slow env,halfcheetah,8192\n")

	rows, err := LoadGrid(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "halfcheetah", rows[0].EnvConfigName)
	assert.Equal(t, "8192", rows[0].NGenStepsPerEpoch)
	assert.Equal(t, "10", rows[0].NExpertDemos)
}

func TestLoadGridHeaderOnly(t *testing.T) {
	path := writeGrid(t, "env_config_name,n_gen_steps_per_epoch,n_expert_demos\n")

	rows, err := LoadGrid(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadGridMissingColumn(t *testing.T) {
	path := writeGrid(t, "env_config_name,n_expert_demos\ncartpole,10\n")

	_, err := LoadGrid(path)
	assert.ErrorContains(t, err, "n_gen_steps_per_epoch")
}

func TestLoadGridUnreadable(t *testing.T) {
	_, err := LoadGrid(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
