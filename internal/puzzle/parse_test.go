package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/internal/puzzle"
)

func TestParseTopo(t *testing.T) {
	g, err := puzzle.ParseTopo("0123\r\n..54\n")
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, byte('5'), g.At(gridgraph.Pos(1, 2)))

	_, err = puzzle.ParseTopo("01x3")
	require.ErrorIs(t, err, puzzle.ErrInput)

	_, err = puzzle.ParseTopo("012\n34")
	require.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
}

func TestParseMarked(t *testing.T) {
	g, s, e, err := puzzle.ParseMarked("#####\n#S.E#\n#####\n", 'S', 'E')
	require.NoError(t, err)
	require.Equal(t, gridgraph.Pos(1, 1), s)
	require.Equal(t, gridgraph.Pos(1, 3), e)
	require.Equal(t, 5, g.Cols())

	_, _, _, err = puzzle.ParseMarked("#S.#", 'S', 'E')
	require.ErrorIs(t, err, puzzle.ErrInput)

	_, _, _, err = puzzle.ParseMarked("SS.E", 'S', 'E')
	require.ErrorIs(t, err, puzzle.ErrInput)
}

func TestParseWarehouse(t *testing.T) {
	g, moves, err := puzzle.ParseWarehouse("#@.#\n#O.#\n\n<^\nv>\n")
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, []gridgraph.Direction{gridgraph.West, gridgraph.North, gridgraph.South, gridgraph.East}, moves)

	_, _, err = puzzle.ParseWarehouse("#@.#")
	require.ErrorIs(t, err, puzzle.ErrInput)

	_, _, err = puzzle.ParseWarehouse("#@.#\n\n<x")
	require.ErrorIs(t, err, puzzle.ErrInput)
}

func TestParseCoordinates(t *testing.T) {
	ps, err := puzzle.ParseCoordinates("5,4\n4,2\r\n")
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Position{gridgraph.Pos(4, 5), gridgraph.Pos(2, 4)}, ps)

	_, err = puzzle.ParseCoordinates("5;4")
	require.ErrorIs(t, err, puzzle.ErrInput)

	_, err = puzzle.ParseCoordinates("a,4")
	require.ErrorIs(t, err, puzzle.ErrInput)
}

func TestParseTowels(t *testing.T) {
	patterns, designs, err := puzzle.ParseTowels("r, wr, b\n\nbrwrr\nbggr\n")
	require.NoError(t, err)
	require.Equal(t, []string{"r", "wr", "b"}, patterns)
	require.Equal(t, []string{"brwrr", "bggr"}, designs)

	_, _, err = puzzle.ParseTowels("r, wr\nbrwrr")
	require.ErrorIs(t, err, puzzle.ErrInput)
}

func TestParseStones(t *testing.T) {
	s, err := puzzle.ParseStones(" 125 17\n")
	require.NoError(t, err)
	require.Equal(t, []int{125, 17}, s)

	_, err = puzzle.ParseStones("1 -2")
	require.ErrorIs(t, err, puzzle.ErrInput)

	_, err = puzzle.ParseStones("1 two")
	require.ErrorIs(t, err, puzzle.ErrInput)
}
