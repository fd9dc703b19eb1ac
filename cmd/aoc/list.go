package main

import (
	"github.com/adventsolutions/aoc"
	"github.com/adventsolutions/aoc/internal/ui"
	"github.com/spf13/cobra"
)

func listCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered years, days and parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			theme := root.theme(w)
			for _, y := range root.years {
				days, err := aoc.Describe(y)
				if err != nil {
					return err
				}
				ui.DayList(w, theme, y.Year, days)
			}
			return nil
		},
	}
}
