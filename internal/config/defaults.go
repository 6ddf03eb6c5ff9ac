package config

import (
	_ "embed"
)

//go:embed defaults/gridwalk.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/gridwalk.yaml.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Maze:   MazeConfig{StepCost: 1, TurnCost: 1000},
		Memory: MemoryConfig{Size: 71, Bytes: 1024},
		Race:   RaceConfig{ShortJump: 2, LongJump: 20, MinSaving: 100},
		Stones: StonesConfig{ShortBlinks: 25, LongBlinks: 75},
	}
}
