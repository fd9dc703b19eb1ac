// Package config loads the runner settings from .aoc.yaml, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = ".aoc.yaml"
	DefaultEnvFile = ".env"

	EnvInputDir = "AOC_INPUT_DIR"
	EnvYear     = "AOC_YEAR"
	EnvDebug    = "AOC_DEBUG"
)

// Config holds the settings shared by every command.
type Config struct {
	InputDir string
	Year     int
	Debug    bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{InputDir: "inputs", Year: 2023}
}

type yamlConfig struct {
	InputDir *string `yaml:"input_dir"`
	Year     *int    `yaml:"year"`
	Debug    *bool   `yaml:"debug"`
}

// Load reads the YAML file at path on top of Default. A missing file is only
// an error when explicit is set.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config.load: %w", err)
	}
	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}
	if dto.InputDir != nil {
		cfg.InputDir = *dto.InputDir
	}
	if dto.Year != nil {
		cfg.Year = *dto.Year
	}
	if dto.Debug != nil {
		cfg.Debug = *dto.Debug
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with AOC_* variables from envFile and the process
// environment. Process variables win over the file; a missing file is
// ignored.
func ApplyEnv(cfg Config, envFile string, getenv func(string) string) (Config, error) {
	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config.env %s: %w", envFile, err)
		}
		vars = map[string]string{}
	}
	lookup := func(k string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return vars[k]
	}
	if v := lookup(EnvInputDir); v != "" {
		cfg.InputDir = v
	}
	if v := lookup(EnvYear); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.env %s=%q: %w", EnvYear, v, err)
		}
		cfg.Year = y
	}
	if v := lookup(EnvDebug); v != "" {
		d, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.env %s=%q: %w", EnvDebug, v, err)
		}
		cfg.Debug = d
	}
	return cfg, nil
}
