// gridwalk solves grid puzzles with the gridwalk traversal engine.
//
// Usage:
//
//	gridwalk list                   - List available puzzles
//	gridwalk <puzzle> <input-file>  - Solve a puzzle, printing both parts
//
// Global flags:
//
//	--config <path>  - Custom YAML config (default: search ~/.gridwalk, ./configs, built-in)
//	--verbose        - Debug logging on stderr
//	--render         - Draw the final grid after the answers
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
