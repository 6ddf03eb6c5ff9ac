package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/gridwalk/astar"
	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/internal/config"
	"github.com/katalvlaran/gridwalk/memo"
	"github.com/katalvlaran/gridwalk/push"
	"github.com/katalvlaran/gridwalk/region"
	"github.com/katalvlaran/gridwalk/shortcut"
)

// ErrUnknownPuzzle is returned by Lookup for an unregistered name.
var ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")

// Answer holds both parts of a solution. Grid and Highlight, when set,
// describe a picture worth rendering.
type Answer struct {
	PartOne   string
	PartTwo   string
	Grid      *gridgraph.Grid
	Highlight []gridgraph.Position
}

// Solver turns raw input into an Answer.
type Solver func(input string, cfg config.Config) (Answer, error)

var solvers = map[string]Solver{
	"trails":    Trails,
	"garden":    Garden,
	"maze":      Maze,
	"warehouse": Warehouse,
	"memory":    Memory,
	"race":      Race,
	"stones":    Stones,
	"towels":    Towels,
}

// Names returns every registered puzzle name, sorted.
func Names() []string {
	names := make([]string, 0, len(solvers))
	for n := range solvers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the solver registered under name.
func Lookup(name string) (Solver, error) {
	s, ok := solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, name)
	}
	return s, nil
}

func isWall(c byte) bool { return c == gridgraph.Wall }

// Trails sums trailhead scores (distinct summits reachable) and ratings
// (distinct routes) over every '0' of a height map.
func Trails(input string, _ config.Config) (Answer, error) {
	g, err := ParseTopo(input)
	if err != nil {
		return Answer{}, err
	}
	ascending := bfs.WithStep(func(from, to gridgraph.Position) bool {
		return g.At(to) == g.At(from)+1
	})
	summit := func(p gridgraph.Position) bool { return g.At(p) == '9' }

	score, rating := 0, 0
	for _, head := range g.FindAll('0') {
		peaks, err := bfs.Reachable(g, head, summit, ascending)
		if err != nil && !errors.Is(err, bfs.ErrUnreachable) {
			return Answer{}, err
		}
		score += len(peaks)

		routes, err := bfs.CountPaths(g, head, summit, ascending)
		if err != nil {
			return Answer{}, err
		}
		rating += routes
	}
	return Answer{PartOne: strconv.Itoa(score), PartTwo: strconv.Itoa(rating)}, nil
}

// Garden prices fencing for every plant region: area × perimeter, then
// area × sides.
func Garden(input string, _ config.Config) (Answer, error) {
	g, err := gridgraph.ParseGrid(normalize(input))
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		PartOne: strconv.Itoa(region.FencePrice(g)),
		PartTwo: strconv.Itoa(region.BulkPrice(g)),
	}, nil
}

// Maze finds the cheapest S→E route starting east, then counts the tiles
// on any cheapest route.
func Maze(input string, cfg config.Config) (Answer, error) {
	g, s, e, err := ParseMarked(input, 'S', 'E')
	if err != nil {
		return Answer{}, err
	}
	opts := []astar.Option{astar.WithStepCost(cfg.Maze.StepCost), astar.WithTurnCost(cfg.Maze.TurnCost)}
	start := astar.State{Pos: s, Facing: gridgraph.East}

	res, err := astar.BestCost(g, start, e, opts...)
	if err != nil {
		return Answer{}, err
	}
	tiles, _, err := astar.OptimalTiles(g, start, e, opts...)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		PartOne:   strconv.Itoa(res.Cost),
		PartTwo:   strconv.Itoa(len(tiles)),
		Grid:      g,
		Highlight: tiles,
	}, nil
}

// Warehouse replays the robot's moves on the map as given and on its
// double-width version, reporting the final GPS sums.
func Warehouse(input string, _ config.Config) (Answer, error) {
	g, moves, err := ParseWarehouse(input)
	if err != nil {
		return Answer{}, err
	}
	narrow, err := push.NewWarehouse(g)
	if err != nil {
		return Answer{}, err
	}
	wide, err := narrow.Widen()
	if err != nil {
		return Answer{}, err
	}
	narrow.Run(moves)
	wide.Run(moves)

	return Answer{
		PartOne: strconv.Itoa(narrow.GPS()),
		PartTwo: strconv.Itoa(wide.GPS()),
		Grid:    wide.Grid(),
	}, nil
}

// Memory drops the configured number of bytes into a square memory space,
// measures the shortest corner-to-corner walk, then finds the first byte
// that cuts the exit off.
func Memory(input string, cfg config.Config) (Answer, error) {
	fallen, err := ParseCoordinates(input)
	if err != nil {
		return Answer{}, err
	}
	n := cfg.Memory.Size
	g, err := gridgraph.NewFilled(n, n, gridgraph.Floor)
	if err != nil {
		return Answer{}, err
	}
	for i, p := range fallen {
		if !g.Contains(p) {
			return Answer{}, fmt.Errorf("%w: byte %d at %v outside %d×%d", ErrInput, i, p, n, n)
		}
	}
	start, exit := gridgraph.Pos(0, 0), gridgraph.Pos(n-1, n-1)

	dropped := g
	for _, p := range fallen[:min(cfg.Memory.Bytes, len(fallen))] {
		if dropped, err = dropped.With(p, gridgraph.Wall); err != nil {
			return Answer{}, err
		}
	}
	ans := Answer{Grid: dropped}

	walk, err := bfs.Walk(dropped, start, bfs.WithoutWalls(dropped, isWall))
	if err != nil {
		return Answer{}, err
	}
	if path, err := walk.PathTo(exit); err == nil {
		ans.PartOne = strconv.Itoa(len(path) - 1)
		ans.Highlight = path
	} else {
		ans.PartOne = "unreachable"
	}

	idx, err := bfs.FirstBlocking(g, start, exit, fallen)
	switch {
	case errors.Is(err, bfs.ErrNeverBlocked):
		ans.PartTwo = "never blocked"
	case err != nil:
		return Answer{}, err
	default:
		ans.PartTwo = fmt.Sprintf("%d,%d", fallen[idx].Col, fallen[idx].Row)
	}
	return ans, nil
}

// Race counts cheats saving at least the configured minimum, first with
// short jumps and then with long ones.
func Race(input string, cfg config.Config) (Answer, error) {
	g, s, e, err := ParseMarked(input, 'S', 'E')
	if err != nil {
		return Answer{}, err
	}
	short, err := shortcut.Count(g, s, e, cfg.Race.ShortJump, cfg.Race.MinSaving)
	if err != nil {
		return Answer{}, err
	}
	long, err := shortcut.Count(g, s, e, cfg.Race.LongJump, cfg.Race.MinSaving)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		PartOne: strconv.Itoa(shortcut.Total(short)),
		PartTwo: strconv.Itoa(shortcut.Total(long)),
	}, nil
}

// Stones counts the stones after the short and the long blink runs.
func Stones(input string, cfg config.Config) (Answer, error) {
	stones, err := ParseStones(input)
	if err != nil {
		return Answer{}, err
	}
	one, err := memo.Stones(stones, cfg.Stones.ShortBlinks)
	if err != nil {
		return Answer{}, err
	}
	two, err := memo.Stones(stones, cfg.Stones.LongBlinks)
	if err != nil {
		return Answer{}, err
	}
	return Answer{PartOne: strconv.Itoa(one), PartTwo: strconv.Itoa(two)}, nil
}

// Towels counts the composable designs and the total number of
// arrangements across all designs.
func Towels(input string, _ config.Config) (Answer, error) {
	patterns, designs, err := ParseTowels(input)
	if err != nil {
		return Answer{}, err
	}
	possible, ways := 0, 0
	for _, d := range designs {
		if memo.CanCompose(patterns, d) {
			possible++
		}
		ways += memo.Arrangements(patterns, d)
	}
	return Answer{PartOne: strconv.Itoa(possible), PartTwo: strconv.Itoa(ways)}, nil
}
