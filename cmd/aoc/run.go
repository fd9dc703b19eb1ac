package main

import (
	"fmt"

	"github.com/adventsolutions/aoc"
	"github.com/adventsolutions/aoc/internal/ui"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

func runCmd(root *rootOptions) *cobra.Command {
	var (
		year       int
		day        int
		part       string
		onlySample bool
		skipSample bool
		profMode   string
	)

	c := &cobra.Command{
		Use:   "run [input|-]",
		Short: "Run puzzle parts, checking their samples first",
		Long: "Run puzzle parts. The input defaults to <input_dir>/<year>/dayNN.txt; " +
			"pass a path or - for standard input together with --day.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("year") {
				year = cfg.Year
			}
			y, err := root.year(year)
			if err != nil {
				return err
			}
			if onlySample && skipSample {
				return fmt.Errorf("--sample and --skip-sample are mutually exclusive")
			}

			switch profMode {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			default:
				return fmt.Errorf("unknown --profile %q; want cpu or mem", profMode)
			}

			opts := aoc.Options{
				Day:        day,
				Part:       part,
				OnlySample: onlySample,
				SkipSample: skipSample,
				InputDir:   cfg.InputDir,
				Logger:     newLogger(cmd.ErrOrStderr(), cfg.Debug),
				Reporter:   ui.NewReporter(cmd.OutOrStdout(), root.theme(cmd.OutOrStdout())),
			}
			if len(args) == 1 {
				opts.Input = args[0]
			}
			return aoc.Run(cmd.Context(), y, opts)
		},
	}

	c.Flags().IntVarP(&year, "year", "y", 0, "contest year (default from config)")
	c.Flags().IntVarP(&day, "day", "d", 0, "day to run (default all)")
	c.Flags().StringVarP(&part, "part", "p", "", "part to run (default all)")
	c.Flags().BoolVar(&onlySample, "sample", false, "only run samples")
	c.Flags().BoolVar(&skipSample, "skip-sample", false, "skip samples")
	c.Flags().StringVar(&profMode, "profile", "", "write a profile to the working directory: cpu|mem")
	return c
}
