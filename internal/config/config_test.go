package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func noEnv(string) string { return "" }

func TestLoad(t *testing.T) {
	p := writeFile(t, ".aoc.yaml", "input_dir: puzzles\nyear: 2021\n")
	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "puzzles", Year: 2021}, cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	p := writeFile(t, ".aoc.yaml", "debug: true\n")
	cfg, err := Load(p, true)
	require.NoError(t, err)
	want := Default()
	want.Debug = true
	assert.Equal(t, want, cfg)
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	p := writeFile(t, ".aoc.yaml", "year: [oops\n")
	_, err := Load(p, false)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "AOC_INPUT_DIR=from-file\nAOC_YEAR=2019\n")

	cfg, err := ApplyEnv(Default(), envFile, noEnv)
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "from-file", Year: 2019}, cfg)

	getenv := func(k string) string {
		if k == EnvYear {
			return "2021"
		}
		if k == EnvDebug {
			return "true"
		}
		return ""
	}
	cfg, err = ApplyEnv(Default(), envFile, getenv)
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "from-file", Year: 2021, Debug: true}, cfg)
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg, err := ApplyEnv(Default(), filepath.Join(t.TempDir(), ".env"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvBadValues(t *testing.T) {
	for _, content := range []string{"AOC_YEAR=soon\n", "AOC_DEBUG=maybe\n"} {
		envFile := writeFile(t, ".env", content)
		_, err := ApplyEnv(Default(), envFile, noEnv)
		assert.Error(t, err, content)
	}
}
