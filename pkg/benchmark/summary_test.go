package benchmark

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCapture(t *testing.T, logRoot, env, seed, content string) {
	t.Helper()
	dir := filepath.Join(logRoot, "parallel", "env_config_name", env, "seed", seed)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stdout"), []byte(content), 0644))
}

func TestSummarizeFiltersTail(t *testing.T) {
	logRoot := t.TempDir()
	content := strings.Repeat("[result] old line\n", 5) + // pushed out of the tail
		strings.Repeat("noise\n", 12) +
		"--------------------\n" +
		"[result] reward_mean 123.4\n" +
		"trailing noise\n"
	writeCapture(t, logRoot, "cartpole", "0", content)

	var buf bytes.Buffer
	require.NoError(t, Summarize(&buf, logRoot))

	out := buf.String()
	assert.Contains(t, out, "--------------------")
	assert.Contains(t, out, "[result] reward_mean 123.4")
	assert.NotContains(t, out, "noise")
	assert.NotContains(t, out, "old line")
}

func TestSummarizeSortsBlocks(t *testing.T) {
	logRoot := t.TempDir()
	writeCapture(t, logRoot, "pendulum", "0", "[result] c\n")
	writeCapture(t, logRoot, "cartpole", "1", "[result] b\n")
	writeCapture(t, logRoot, "cartpole", "0", "[result] a\n")

	var buf bytes.Buffer
	require.NoError(t, Summarize(&buf, logRoot))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "==> "))

	a := strings.Index(out, "[result] a")
	b := strings.Index(out, "[result] b")
	c := strings.Index(out, "[result] c")
	require.NotEqual(t, -1, a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestSummarizeIgnoresOtherFiles(t *testing.T) {
	logRoot := t.TempDir()
	writeCapture(t, logRoot, "cartpole", "0", "[result] a\n")
	dir := filepath.Join(logRoot, "parallel", "env_config_name", "cartpole", "seed", "0")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stderr"), []byte("[result] err\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Summarize(&buf, logRoot))
	assert.NotContains(t, buf.String(), "[result] err")
}

func TestSummarizeMissingDirectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summarize(&buf, filepath.Join(t.TempDir(), "never-ran")))
	assert.Empty(t, buf.String())
}
