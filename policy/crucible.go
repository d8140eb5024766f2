package policy

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Crucible pays the value of each entered cell and may never reverse.
// It goes straight only while Run < MaxRun and turns only once Run >= MinRun;
// the start state (Dir None) may leave in any direction. Stopping on Target
// also needs Run >= MinRun.
//
// Run is bounded by MaxRun, so the state space is at most
// Rows × Cols × 4 × MaxRun plus the start.
type Crucible struct {
	Grid           *grid.Grid
	Target         grid.Point
	MinRun, MaxRun int
}

var _ Located[Momentum] = Crucible{}

// NewCrucible validates the run limits and returns the policy.
func NewCrucible(g *grid.Grid, target grid.Point, minRun, maxRun int) (Crucible, error) {
	if maxRun < 1 || minRun < 0 || minRun > maxRun {
		return Crucible{}, fmt.Errorf("%w: min %d, max %d", ErrBadRun, minRun, maxRun)
	}
	return Crucible{Grid: g, Target: target, MinRun: minRun, MaxRun: maxRun}, nil
}

// Neighbors appends every legal move out of s.
func (c Crucible) Neighbors(s Momentum, buf []search.Edge[Momentum]) []search.Edge[Momentum] {
	for _, dir := range grid.Headings {
		run := 1
		switch {
		case s.Dir == grid.None:
		case dir == s.Dir.Reverse():
			continue
		case dir == s.Dir:
			if s.Run >= c.MaxRun {
				continue
			}
			run = s.Run + 1
		case s.Run < c.MinRun:
			continue
		}

		q := s.Pos.Step(dir)
		v, ok := c.Grid.AtOK(q)
		if !ok {
			continue
		}
		buf = append(buf, search.Edge[Momentum]{To: Momentum{Pos: q, Dir: dir, Run: run}, Cost: int64(v)})
	}
	return buf
}

// IsGoal reports whether s may stop on the target.
func (c Crucible) IsGoal(s Momentum) bool {
	return s.Pos == c.Target && s.Run >= c.MinRun
}

// Start returns the direction-less state at at.
func (Crucible) Start(at grid.Point) Momentum { return Momentum{Pos: at} }

// Pos returns the cell of s.
func (Crucible) Pos(s Momentum) grid.Point { return s.Pos }
