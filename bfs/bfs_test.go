package bfs_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

func isWall(c byte) bool { return c == gridgraph.Wall }

func mustGrid(t testing.TB, text string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseGrid(text)
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.Walk(nil, gridgraph.Pos(0, 0)); !errors.Is(err, bfs.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	g := mustGrid(t, "...\n...")
	// start off the grid
	if _, err := bfs.ShortestDistanceTo(g, gridgraph.Pos(2, 0), gridgraph.Pos(0, 0)); !errors.Is(err, bfs.ErrStartOutOfBounds) {
		t.Errorf("bad start: want ErrStartOutOfBounds, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.Walk(g, gridgraph.Pos(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestShortestDistance_Maze checks a walled maze and the NotFound contract.
func TestShortestDistance_Maze(t *testing.T) {
	g := mustGrid(t, ""+
		"S.#...\n"+
		".##.#.\n"+
		"...#..\n"+
		"#.#..#\n"+
		"....#E")
	start, _ := g.Find('S')
	end, _ := g.Find('E')

	d, err := bfs.ShortestDistanceTo(g, start, end, bfs.WithoutWalls(g, isWall))
	require.ErrorIs(t, err, bfs.ErrUnreachable)
	require.Equal(t, bfs.NotFound, d)

	// Open the wall sealing E off and the route exists.
	opened, err := g.With(gridgraph.Pos(4, 4), '.')
	require.NoError(t, err)
	d, err = bfs.ShortestDistanceTo(opened, start, end, bfs.WithoutWalls(opened, isWall))
	require.NoError(t, err)
	require.Equal(t, 9, d)
}

// TestShortestDistance_StartIsGoal returns zero without expanding.
func TestShortestDistance_StartIsGoal(t *testing.T) {
	g := mustGrid(t, "...")
	d, err := bfs.ShortestDistanceTo(g, gridgraph.Pos(0, 1), gridgraph.Pos(0, 1))
	require.NoError(t, err)
	require.Zero(t, d)
}

// TestShortestDistance_Idempotent runs the same query twice and checks the
// grid is untouched.
func TestShortestDistance_Idempotent(t *testing.T) {
	g := mustGrid(t, "S..#\n.#..\n...E")
	before := g.String()
	start, _ := g.Find('S')
	end, _ := g.Find('E')

	d1, err1 := bfs.ShortestDistanceTo(g, start, end, bfs.WithoutWalls(g, isWall))
	d2, err2 := bfs.ShortestDistanceTo(g, start, end, bfs.WithoutWalls(g, isWall))
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, d1, d2)
	require.Equal(t, 5, d1)
	require.Equal(t, before, g.String())
}

// TestShortestDistance_MatchesBruteForce compares BFS against exhaustive
// simple-path enumeration on small random grids, and against the mirrored
// grid so neighbour order cannot change the minimum.
func TestShortestDistance_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		rows := make([][]byte, 4)
		mirror := make([][]byte, 4)
		for r := range rows {
			rows[r] = make([]byte, 4)
			mirror[r] = make([]byte, 4)
			for c := range rows[r] {
				sym := byte('.')
				if rng.Intn(4) == 0 {
					sym = '#'
				}
				rows[r][c] = sym
			}
		}
		rows[0][0], rows[3][3] = '.', '.'
		for r := range rows {
			for c := range rows[r] {
				mirror[r][3-c] = rows[r][c]
			}
		}
		g, err := gridgraph.NewGrid(rows)
		require.NoError(t, err)
		m, err := gridgraph.NewGrid(mirror)
		require.NoError(t, err)

		want := bruteForceShortest(g, gridgraph.Pos(0, 0), gridgraph.Pos(3, 3))
		got, err := bfs.ShortestDistanceTo(g, gridgraph.Pos(0, 0), gridgraph.Pos(3, 3), bfs.WithoutWalls(g, isWall))
		if want < 0 {
			require.ErrorIs(t, err, bfs.ErrUnreachable, "trial %d\n%s", trial, g)
			continue
		}
		require.NoError(t, err, "trial %d\n%s", trial, g)
		require.Equal(t, want, got, "trial %d\n%s", trial, g)

		mirrored, err := bfs.ShortestDistanceTo(m, gridgraph.Pos(0, 3), gridgraph.Pos(3, 0), bfs.WithoutWalls(m, isWall))
		require.NoError(t, err)
		require.Equal(t, got, mirrored, "trial %d mirrored", trial)
	}
}

// bruteForceShortest enumerates every simple path with DFS and returns the
// shortest length, or -1.
func bruteForceShortest(g *gridgraph.Grid, start, goal gridgraph.Position) int {
	best := -1
	seen := map[gridgraph.Position]bool{start: true}
	var dfs func(p gridgraph.Position, steps int)
	dfs = func(p gridgraph.Position, steps int) {
		if p == goal {
			if best < 0 || steps < best {
				best = steps
			}
			return
		}
		for _, n := range g.Neighbors(p) {
			if seen[n] || isWall(g.At(n)) {
				continue
			}
			seen[n] = true
			dfs(n, steps+1)
			delete(seen, n)
		}
	}
	dfs(start, 0)
	return best
}

// TestWalk_OrderAndDepth covers traversal order, depths and PathTo.
func TestWalk_OrderAndDepth(t *testing.T) {
	g := mustGrid(t, "..\n.#")
	res, err := bfs.Walk(g, gridgraph.Pos(0, 0), bfs.WithoutWalls(g, isWall))
	require.NoError(t, err)

	want := []gridgraph.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	require.Equal(t, 1, res.Depth[gridgraph.Pos(1, 0)])

	path, err := res.PathTo(gridgraph.Pos(1, 0))
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, path)

	_, err = res.PathTo(gridgraph.Pos(1, 1))
	require.ErrorIs(t, err, bfs.ErrUnreachable)
}

// TestWalk_MaxDepth verifies WithMaxDepth for positive and zero limits.
func TestWalk_MaxDepth(t *testing.T) {
	g := mustGrid(t, "....")
	res, err := bfs.Walk(g, gridgraph.Pos(0, 0), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Len(t, res.Order, 3)

	res, err = bfs.Walk(g, gridgraph.Pos(0, 0), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
}

// TestWalk_OnVisitError aborts the traversal with a wrapped hook error.
func TestWalk_OnVisitError(t *testing.T) {
	g := mustGrid(t, "....")
	stop := errors.New("stop here")
	_, err := bfs.Walk(g, gridgraph.Pos(0, 0), bfs.WithOnVisit(func(p gridgraph.Position, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}
