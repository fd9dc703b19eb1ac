package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adventsolutions/aoc"
	"github.com/adventsolutions/aoc/internal/config"
	"github.com/adventsolutions/aoc/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	configPath string
	envFile    string
	debug      bool
	plain      bool
	years      []aoc.Year
}

func newRootCmd(years []aoc.Year) *cobra.Command {
	opts := &rootOptions{years: years}
	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code solutions",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file with AOC_* overrides")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output while running samples")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "disable styled output")

	cmd.AddCommand(runCmd(opts), listCmd(opts))
	return cmd
}

// loadConfig resolves the configuration file, the env file and the process
// environment, in increasing priority.
func (o *rootOptions) loadConfig() (config.Config, error) {
	path, explicit := o.configPath, o.configPath != ""
	if !explicit {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err = config.ApplyEnv(cfg, o.envFile, os.Getenv)
	if err != nil {
		return config.Config{}, err
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func (o *rootOptions) theme(w io.Writer) ui.Theme {
	if f, ok := w.(*os.File); o.plain || !ok || !term.IsTerminal(int(f.Fd())) {
		return ui.PlainTheme()
	}
	return ui.DefaultTheme()
}

func (o *rootOptions) year(y int) (aoc.Year, error) {
	for _, yr := range o.years {
		if yr.Year == y {
			return yr, nil
		}
	}
	return aoc.Year{}, fmt.Errorf("no solutions for %d", y)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
