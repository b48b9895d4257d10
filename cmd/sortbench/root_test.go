package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func algorithmsIn(report string) []string {
	var names []string
	lines := strings.Split(strings.TrimSpace(report), "\n")
	for _, line := range lines[1:] {
		names = append(names, strings.Fields(line)[0])
	}
	return names
}

func TestSortbench(t *testing.T) {
	out, err := execute(t, "--size", "200", "--trials", "2", "--algorithms", "heap,quick")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ALGORITHM"))
	require.ElementsMatch(t, []string{"heap", "quick"}, algorithmsIn(out))
}

func TestSortbenchAll(t *testing.T) {
	out, err := execute(t, "--size", "100", "--trials", "1", "--min-run", "4")
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"bubble", "insertion", "merge", "quick", "heap", "hybrid"}, algorithmsIn(out))
}

func TestSortbenchEnv(t *testing.T) {
	t.Setenv("SORTBENCH_ALGORITHMS", "merge, hybrid")
	t.Setenv("SORTBENCH_MIN_RUN", "4")
	t.Setenv("SORTBENCH_TRIALS", "1")

	out, err := execute(t, "--size", "64")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"merge", "hybrid"}, algorithmsIn(out))
}

func TestSortbenchConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sortbench.yaml")
	require.NoError(t, os.WriteFile(file, []byte("size: 50\ntrials: 1\nalgorithms: [bubble]\n"), 0o644))

	out, err := execute(t, "--config", file)
	require.NoError(t, err)
	require.Equal(t, []string{"bubble"}, algorithmsIn(out))
	require.Contains(t, out, " 50 ")
}

func TestSortbenchErrors(t *testing.T) {
	_, err := execute(t, "--algorithms", "shell")
	require.ErrorContains(t, err, `unknown algorithm: "shell"`)

	_, err = execute(t, "--trials", "0")
	require.ErrorContains(t, err, "invalid number of trials")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config")

	_, err = execute(t, "extra")
	require.Error(t, err)
}

func TestSplitNames(t *testing.T) {
	require.Equal(t, []string{"heap", "quick", "merge"}, splitNames([]string{"heap, quick", "", "merge,"}))
	require.Nil(t, splitNames(nil))
}
