// Command aoc runs the Advent of Code solutions.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/adventsolutions/aoc"
	"github.com/adventsolutions/aoc/y2019"
	"github.com/adventsolutions/aoc/y2021"
	"github.com/adventsolutions/aoc/y2023"
)

func registry() []aoc.Year {
	return []aoc.Year{y2019.Year(), y2021.Year(), y2023.Year()}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(registry()).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
