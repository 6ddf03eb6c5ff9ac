package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// fallingBytes are the reference "x,y" coordinates for a 7×7 memory space.
var fallingBytes = [][2]int{
	{5, 4}, {4, 2}, {4, 5}, {3, 0}, {2, 1}, {6, 3}, {2, 4}, {1, 5}, {0, 6},
	{3, 3}, {2, 6}, {5, 1}, {1, 2}, {5, 5}, {2, 5}, {6, 5}, {1, 4}, {0, 4},
	{6, 4}, {1, 1}, {6, 1}, {1, 0}, {0, 5}, {1, 6}, {2, 0},
}

func fallingPositions() []gridgraph.Position {
	out := make([]gridgraph.Position, len(fallingBytes))
	for i, xy := range fallingBytes {
		out[i] = gridgraph.Pos(xy[1], xy[0])
	}
	return out
}

// TestShortestDistance_AfterTwelveBytes routes around the first 12 bytes.
func TestShortestDistance_AfterTwelveBytes(t *testing.T) {
	g, err := gridgraph.NewFilled(7, 7, '.')
	require.NoError(t, err)
	for _, p := range fallingPositions()[:12] {
		g, err = g.With(p, '#')
		require.NoError(t, err)
	}

	d, err := bfs.ShortestDistanceTo(g, gridgraph.Pos(0, 0), gridgraph.Pos(6, 6), bfs.WithoutWalls(g, isWall))
	require.NoError(t, err)
	require.Equal(t, 22, d)
}

// TestFirstBlocking finds the byte that first cuts the exit off.
func TestFirstBlocking(t *testing.T) {
	g, err := gridgraph.NewFilled(7, 7, '.')
	require.NoError(t, err)
	obstacles := fallingPositions()

	idx, err := bfs.FirstBlocking(g, gridgraph.Pos(0, 0), gridgraph.Pos(6, 6), obstacles)
	require.NoError(t, err)
	require.Equal(t, 20, idx)
	require.Equal(t, gridgraph.Pos(1, 6), obstacles[idx]) // x=6, y=1

	// Only the first ten bytes never seal the exit.
	_, err = bfs.FirstBlocking(g, gridgraph.Pos(0, 0), gridgraph.Pos(6, 6), obstacles[:10])
	require.ErrorIs(t, err, bfs.ErrNeverBlocked)
}

// TestFirstBlocking_StartCovered reports the obstacle landing on the start.
func TestFirstBlocking_StartCovered(t *testing.T) {
	g, err := gridgraph.NewFilled(2, 2, '.')
	require.NoError(t, err)
	idx, err := bfs.FirstBlocking(g, gridgraph.Pos(0, 0), gridgraph.Pos(1, 1),
		[]gridgraph.Position{{Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}
