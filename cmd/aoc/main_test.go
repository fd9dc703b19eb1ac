package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adventsolutions/aoc"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args in a scratch directory, isolated from any
// config in the environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_YEAR", "")
	t.Setenv("AOC_DEBUG", "")
	dir := t.TempDir()
	args = append(args, "--config", writeConfig(t, dir), "--env-file", filepath.Join(dir, ".env"))

	var out, errOut bytes.Buffer
	cmd := newRootCmd(registry())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, ".aoc.yaml")
	content := "input_dir: " + filepath.Join(dir, "inputs") + "\nyear: 2021\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "2019\n")
	require.Contains(t, out, "2023\n")
	require.Contains(t, out, "day  8  parts [1 2] 2/2 samples")
}

func TestRunSamples(t *testing.T) {
	out, err := execute(t, "run", "--sample", "--day", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Running 2021 day 1")
	require.Contains(t, out, "part 1 sample: 7 ✅")
	require.Contains(t, out, "part 2 sample: 5 ✅")
}

func TestRunInputFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "dive.txt")
	require.NoError(t, os.WriteFile(input, []byte("forward 2\ndown 3\nforward 1\n"), 0o600))

	out, err := execute(t, "run", "--year", "2021", "--day", "2", "--skip-sample", input)
	require.NoError(t, err)
	require.Contains(t, out, "part 1: 9 (")
	require.Contains(t, out, "part 2: 9 (")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown year", []string{"run", "--year", "1999"}, "no solutions for 1999"},
		{"unknown day", []string{"run", "--day", "25"}, "no day 25 in 2021"},
		{"input without day", []string{"run", "in.txt"}, "without selecting a day"},
		{"bad profile", []string{"run", "--profile", "gpu"}, "unknown --profile"},
		{"missing input", []string{"run", "--day", "1", "--skip-sample"}, "opening"},
		{"conflicting flags", []string{"run", "--sample", "--skip-sample"}, "mutually exclusive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegistry(t *testing.T) {
	for _, y := range registry() {
		days, err := aoc.Describe(y)
		require.NoError(t, err)
		require.NotEmpty(t, days, "%d", y.Year)
	}
}
