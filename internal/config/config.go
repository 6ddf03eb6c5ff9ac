// Package config provides YAML-based configuration for the gridwalk CLI.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config contains every tunable of the puzzle runners.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Maze   MazeConfig   `yaml:"maze"`
	Memory MemoryConfig `yaml:"memory"`
	Race   RaceConfig   `yaml:"race"`
	Stones StonesConfig `yaml:"stones"`
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MazeConfig is the reindeer-maze cost model.
type MazeConfig struct {
	StepCost int `yaml:"step_cost"`
	TurnCost int `yaml:"turn_cost"`
}

// MemoryConfig describes the falling-bytes memory space.
type MemoryConfig struct {
	Size  int `yaml:"size"`
	Bytes int `yaml:"bytes"`
}

// RaceConfig bounds racetrack cheats.
type RaceConfig struct {
	ShortJump int `yaml:"short_jump"`
	LongJump  int `yaml:"long_jump"`
	MinSaving int `yaml:"min_saving"`
}

// StonesConfig holds the blink counts for both parts.
type StonesConfig struct {
	ShortBlinks int `yaml:"short_blinks"`
	LongBlinks  int `yaml:"long_blinks"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case !logLevels[c.Log.Level]:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	case c.Maze.StepCost < 0 || c.Maze.TurnCost < 0:
		return fmt.Errorf("%w: maze costs must be non-negative", ErrInvalid)
	case c.Memory.Size <= 0:
		return fmt.Errorf("%w: memory.size %d", ErrInvalid, c.Memory.Size)
	case c.Memory.Bytes < 0:
		return fmt.Errorf("%w: memory.bytes %d", ErrInvalid, c.Memory.Bytes)
	case c.Race.ShortJump <= 0 || c.Race.LongJump <= 0:
		return fmt.Errorf("%w: race jumps must be positive", ErrInvalid)
	case c.Race.MinSaving <= 0:
		return fmt.Errorf("%w: race.min_saving %d", ErrInvalid, c.Race.MinSaving)
	case c.Stones.ShortBlinks < 0 || c.Stones.LongBlinks < 0:
		return fmt.Errorf("%w: blink counts must be non-negative", ErrInvalid)
	}
	return nil
}
