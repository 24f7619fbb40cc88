package benchmark

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// tailLines is how many trailing lines of each job capture are scanned
// for reportable output.
const tailLines = 15

// resultMarker tags the trainer's reportable metric lines.
const resultMarker = "[result]"

// sectionSeparator matches the rules the trainer prints between output
// sections.
var sectionSeparator = regexp.MustCompile(`^[-=]{3,}`)

// Summarize locates every per-job stdout capture under logRoot/parallel,
// sorts the paths for determinism, and writes each file's filtered tail to
// w. A missing capture directory degrades to an empty report.
func Summarize(w io.Writer, logRoot string) error {
	parallelDir := filepath.Join(logRoot, "parallel")

	captures, err := findCaptures(parallelDir)
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, path := range captures {
		lines, err := filteredTail(path)
		if err != nil {
			return err
		}
		header.Fprintf(w, "==> %s <==\n", path)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}

	return nil
}

// findCaptures returns the sorted stdout capture paths under dir.
func findCaptures(dir string) ([]string, error) {
	var captures []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == "stdout" {
			captures = append(captures, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan capture directory: %w", err)
	}

	sort.Strings(captures)
	return captures, nil
}

// filteredTail returns the reportable lines among the last tailLines lines
// of the file: section separators and result-marker lines.
func filteredTail(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture %s: %w", path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}

	var kept []string
	for _, line := range lines {
		if sectionSeparator.MatchString(line) || strings.Contains(line, resultMarker) {
			kept = append(kept, line)
		}
	}
	return kept, nil
}
