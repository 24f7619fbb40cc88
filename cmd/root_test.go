package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	_, err := execute(t, "run", "--bogus")
	assert.ErrorContains(t, err, "unknown flag")
}

func TestRunRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "run", "cartpole")
	assert.Error(t, err)
}

func TestAnalyzeRequiresSourceDir(t *testing.T) {
	_, err := execute(t, "analyze")
	assert.ErrorContains(t, err, "source_dir")
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestSummarizeWithoutRecordedRun(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := execute(t, "summarize")
	assert.ErrorContains(t, err, "no previous run recorded")
}

func TestSummarizeTooManyArgs(t *testing.T) {
	_, err := execute(t, "summarize", "a", "b")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "imit-bench")
}

func TestVersionCommandJSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
}
