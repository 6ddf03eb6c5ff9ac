// Package render draws grids for terminal output with lipgloss styles.
// Adjacent cells of the same class share one styled run.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// PathMark replaces highlighted floor cells.
const PathMark byte = 'o'

type class uint8

const (
	plain class = iota
	wall
	box
	robot
	marker
	path
)

var classStyles = map[class]lipgloss.Style{
	plain:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	box:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	robot:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	marker: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	path:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

func classify(c byte, lit bool) class {
	switch c {
	case gridgraph.Wall:
		return wall
	case 'O', '[', ']':
		return box
	case '@':
		return robot
	case 'S', 'E':
		return marker
	}
	if lit {
		return path
	}
	return plain
}

// Grid renders g row by row. Highlighted cells are drawn in the path style,
// and highlighted floor cells show PathMark.
func Grid(g *gridgraph.Grid, highlight []gridgraph.Position) string {
	if g == nil {
		return ""
	}
	lit := make(map[gridgraph.Position]bool, len(highlight))
	for _, p := range highlight {
		lit[p] = true
	}

	var sb strings.Builder
	sb.Grow(g.Size()*2 + g.Rows())
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		c := 0
		for c < g.Cols() {
			p := gridgraph.Pos(r, c)
			cls := classify(g.At(p), lit[p])

			var run strings.Builder
			for c < g.Cols() {
				p = gridgraph.Pos(r, c)
				sym := g.At(p)
				if classify(sym, lit[p]) != cls {
					break
				}
				if lit[p] && sym == gridgraph.Floor {
					sym = PathMark
				}
				run.WriteByte(sym)
				c++
			}
			sb.WriteString(classStyles[cls].Render(run.String()))
		}
	}
	return sb.String()
}
