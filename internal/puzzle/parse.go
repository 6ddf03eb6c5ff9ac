// Package puzzle turns raw puzzle inputs into engine calls: one parser and
// one solver per puzzle, each returning the two answers.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ErrInput is returned for malformed puzzle input.
var ErrInput = errors.New("puzzle: malformed input")

// normalize drops carriage returns and surrounding blank lines.
func normalize(text string) string {
	return strings.Trim(strings.ReplaceAll(text, "\r", ""), "\n")
}

// ParseTopo reads a height map of digits 0-9; '.' marks impassable cells.
func ParseTopo(text string) (*gridgraph.Grid, error) {
	g, err := gridgraph.ParseGrid(normalize(text))
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.Size(); i++ {
		if c := g.At(g.Coordinate(i)); c != '.' && (c < '0' || c > '9') {
			return nil, fmt.Errorf("%w: height %q at %v", ErrInput, c, g.Coordinate(i))
		}
	}
	return g, nil
}

// ParseMarked reads a walled map and locates its single start and end
// markers, e.g. 'S' and 'E'.
func ParseMarked(text string, startMark, endMark byte) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	var zero gridgraph.Position
	g, err := gridgraph.ParseGrid(normalize(text))
	if err != nil {
		return nil, zero, zero, err
	}
	marks := [2]gridgraph.Position{}
	for i, m := range [2]byte{startMark, endMark} {
		found := g.FindAll(m)
		if len(found) != 1 {
			return nil, zero, zero, fmt.Errorf("%w: want one %q, found %d", ErrInput, m, len(found))
		}
		marks[i] = found[0]
	}
	return g, marks[0], marks[1], nil
}

// ParseWarehouse splits the map from the move list. Moves may wrap over
// several lines.
func ParseWarehouse(text string) (*gridgraph.Grid, []gridgraph.Direction, error) {
	mapText, moveText, ok := strings.Cut(normalize(text), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing blank line before moves", ErrInput)
	}
	g, err := gridgraph.ParseGrid(mapText)
	if err != nil {
		return nil, nil, err
	}
	moves := make([]gridgraph.Direction, 0, len(moveText))
	for i := 0; i < len(moveText); i++ {
		c := moveText[i]
		if c == '\n' {
			continue
		}
		d, err := gridgraph.ParseDirection(c)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: move %d: %w", ErrInput, len(moves), err)
		}
		moves = append(moves, d)
	}
	return g, moves, nil
}

// ParseCoordinates reads one "x,y" pair per line. x is the column.
func ParseCoordinates(text string) ([]gridgraph.Position, error) {
	var out []gridgraph.Position
	for n, line := range strings.Split(normalize(text), "\n") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(line), ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrInput, n+1, line)
		}
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrInput, n+1, line)
		}
		out = append(out, gridgraph.Pos(y, x))
	}
	return out, nil
}

// ParseTowels reads a comma-separated pattern line, a blank line, then one
// design per line.
func ParseTowels(text string) (patterns, designs []string, err error) {
	head, body, ok := strings.Cut(normalize(text), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing blank line after patterns", ErrInput)
	}
	for _, p := range strings.Split(head, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	for _, d := range strings.Split(body, "\n") {
		if d = strings.TrimSpace(d); d != "" {
			designs = append(designs, d)
		}
	}
	return patterns, designs, nil
}

// ParseStones reads whitespace-separated non-negative integers.
func ParseStones(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: stone %q", ErrInput, f)
		}
		out = append(out, v)
	}
	return out, nil
}
