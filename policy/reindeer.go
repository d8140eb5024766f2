package policy

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Reindeer steps forward at cost 1 or rotates 90° in place at TurnCost.
// The goal is reaching Target with any facing. Start faces Facing, or East
// when Facing is None.
type Reindeer struct {
	Grid     *grid.Grid
	Target   grid.Point
	Wall     int
	TurnCost int64
	Facing   grid.Direction
}

var _ Located[Heading] = Reindeer{}

// Neighbors appends the forward step (when open) and both rotations.
func (r Reindeer) Neighbors(s Heading, buf []search.Edge[Heading]) []search.Edge[Heading] {
	ahead := s.Pos.Step(s.Dir)
	if v, ok := r.Grid.AtOK(ahead); ok && v != r.Wall {
		buf = append(buf, search.Edge[Heading]{To: Heading{Pos: ahead, Dir: s.Dir}, Cost: 1})
	}
	return append(buf,
		search.Edge[Heading]{To: Heading{Pos: s.Pos, Dir: s.Dir.Left()}, Cost: r.TurnCost},
		search.Edge[Heading]{To: Heading{Pos: s.Pos, Dir: s.Dir.Right()}, Cost: r.TurnCost},
	)
}

// IsGoal reports whether s stands on the target.
func (r Reindeer) IsGoal(s Heading) bool { return s.Pos == r.Target }

// Start returns the initial heading at at.
func (r Reindeer) Start(at grid.Point) Heading {
	dir := r.Facing
	if dir == grid.None {
		dir = grid.East
	}
	return Heading{Pos: at, Dir: dir}
}

// Pos returns the cell of s.
func (Reindeer) Pos(s Heading) grid.Point { return s.Pos }

// Seats counts the cells lying on at least one cheapest route from start to
// Target, over every facing the target can be reached with at that cost.
// It reports false when the target is unreachable.
func (r Reindeer) Seats(start grid.Point) (int, bool) {
	res := search.Run[Heading](r.Start(start), r, search.WithAllPredecessors[Heading]())
	if !res.Found {
		return 0, false
	}
	cells := make(map[grid.Point]struct{})
	for s := range res.Cheapest() {
		cells[s.Pos] = struct{}{}
	}

	return len(cells), true
}

// Maze is a walled character map with S and E markers.
type Maze struct {
	Grid       *grid.Grid
	Start, End grid.Point
}

// ParseMaze reads a '#'-walled maze with one S and one E.
func ParseMaze(r io.Reader) (*Maze, error) {
	g, err := grid.ParseChars(r)
	if err != nil {
		return nil, err
	}
	start, okS := g.Find(Start)
	end, okE := g.Find(End)
	if !okS || !okE {
		return nil, fmt.Errorf("%w: maze needs both S and E", ErrMissingMarker)
	}

	return &Maze{Grid: g, Start: start, End: end}, nil
}

// Reindeer returns the turn-penalised policy for m, starting east.
func (m *Maze) Reindeer(turnCost int64) Reindeer {
	return Reindeer{Grid: m.Grid, Target: m.End, Wall: Wall, TurnCost: turnCost, Facing: grid.East}
}

// Uniform returns the plain step-count policy for m.
func (m *Maze) Uniform() Uniform {
	return Uniform{Grid: m.Grid, Target: m.End, Wall: Wall}
}
