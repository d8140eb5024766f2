package policy

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Uniform moves 4-ways at cost 1 and never enters cells holding Wall.
type Uniform struct {
	Grid   *grid.Grid
	Target grid.Point
	Wall   int
}

var _ Located[grid.Point] = Uniform{}

// Neighbors appends every in-bounds non-wall neighbor of p.
func (u Uniform) Neighbors(p grid.Point, buf []search.Edge[grid.Point]) []search.Edge[grid.Point] {
	for _, d := range grid.Offsets(grid.Conn4) {
		q := p.Add(d)
		if v, ok := u.Grid.AtOK(q); ok && v != u.Wall {
			buf = append(buf, search.Edge[grid.Point]{To: q, Cost: 1})
		}
	}
	return buf
}

// IsGoal reports whether p is the target cell.
func (u Uniform) IsGoal(p grid.Point) bool { return p == u.Target }

// Start returns at.
func (Uniform) Start(at grid.Point) grid.Point { return at }

// Pos returns p.
func (Uniform) Pos(p grid.Point) grid.Point { return p }
