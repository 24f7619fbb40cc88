package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func chdirGitRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	chdir(t, root)
	return root
}

func TestLastRunRoundTrip(t *testing.T) {
	root := chdirGitRoot(t)

	require.NoError(t, SetLastRun("output/imit_benchmark/2020-05-15T10:30:00"))

	got, err := GetLastRun()
	require.NoError(t, err)
	assert.Equal(t, "output/imit_benchmark/2020-05-15T10:30:00", got)

	// The state file lives at the git root
	_, err = os.Stat(filepath.Join(root, ".imit-bench", "state.yml"))
	assert.NoError(t, err)
}

func TestGetLastRunEmpty(t *testing.T) {
	chdirGitRoot(t)

	got, err := GetLastRun()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStateFileFoundFromSubdirectory(t *testing.T) {
	root := chdirGitRoot(t)
	require.NoError(t, SetLastRun("/tmp/x"))

	sub := filepath.Join(root, "experiments")
	require.NoError(t, os.Mkdir(sub, 0755))
	chdir(t, sub)

	got, err := GetLastRun()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}
