package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/internal/puzzle"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available puzzles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available puzzles:")
			for _, name := range puzzle.Names() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run 'gridwalk <puzzle> <input-file>' to solve one.")
		},
	}
}
