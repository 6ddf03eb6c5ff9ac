package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/internal/config"
	"github.com/katalvlaran/gridwalk/internal/puzzle"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	render     bool

	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridwalk",
		Short: "Solve grid puzzles with BFS, A*, flood fill and push simulation",
		Long: `gridwalk runs a puzzle input through the grid traversal engine and
prints the answers to both parts.

Examples:
  gridwalk list
  gridwalk maze input.txt
  gridwalk memory input.txt --render
  gridwalk race input.txt --config ./race.yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to custom config YAML")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.render, "render", false, "Draw the final grid")

	root.AddCommand(newListCmd())
	for _, name := range puzzle.Names() {
		root.AddCommand(newSolveCmd(a, name))
	}
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: a.verbose,
		Prefix:          "gridwalk",
	})

	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.logger.Error("could not load config", "path", a.configPath, "err", err)
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger.SetLevel(level)
	a.logger.Debug("config loaded", "path", a.configPath, "level", level)
	return nil
}
