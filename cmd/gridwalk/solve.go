package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/internal/puzzle"
	"github.com/katalvlaran/gridwalk/internal/render"
)

var puzzleShorts = map[string]string{
	"trails":    "Trailhead scores and ratings on a height map",
	"garden":    "Fence prices of garden plot regions",
	"maze":      "Cheapest reindeer route and its tiles",
	"warehouse": "Robot pushing narrow and wide boxes",
	"memory":    "Escape falling bytes and find the blocking one",
	"race":      "Count racetrack cheats",
	"stones":    "Count splitting stones after blinking",
	"towels":    "Compose towel designs from patterns",
}

func newSolveCmd(a *app, name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <input-file>",
		Short: puzzleShorts[name],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, name, args[0])
		},
	}
}

func (a *app) solve(cmd *cobra.Command, name, path string) error {
	solver, err := puzzle.Lookup(name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Error("could not read input", "puzzle", name, "file", path, "err", err)
		return fmt.Errorf("failed to read input %s: %w", path, err)
	}

	started := time.Now()
	ans, err := solver(string(data), a.cfg)
	if err != nil {
		a.logger.Error("solve failed", "puzzle", name, "file", path, "err", err)
		return err
	}
	a.logger.Debug("solved", "puzzle", name, "file", path, "elapsed", time.Since(started))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Part One:")
	fmt.Fprintln(out, ans.PartOne)
	fmt.Fprintln(out, "Part Two:")
	fmt.Fprintln(out, ans.PartTwo)
	if a.render && ans.Grid != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Grid(ans.Grid, ans.Highlight))
	}
	return nil
}
