package policy

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Weighted moves 4-ways and pays the value of the entered cell.
// Passable, when set, rejects cells by value; nil lets every cell through.
type Weighted struct {
	Grid     *grid.Grid
	Target   grid.Point
	Passable func(v int) bool
}

var _ Located[grid.Point] = Weighted{}

// Neighbors appends every in-bounds passable neighbor of p.
func (w Weighted) Neighbors(p grid.Point, buf []search.Edge[grid.Point]) []search.Edge[grid.Point] {
	for _, d := range grid.Offsets(grid.Conn4) {
		q := p.Add(d)
		v, ok := w.Grid.AtOK(q)
		if !ok || (w.Passable != nil && !w.Passable(v)) {
			continue
		}
		buf = append(buf, search.Edge[grid.Point]{To: q, Cost: int64(v)})
	}
	return buf
}

// IsGoal reports whether p is the target cell.
func (w Weighted) IsGoal(p grid.Point) bool { return p == w.Target }

// Start returns at.
func (Weighted) Start(at grid.Point) grid.Point { return at }

// Pos returns p.
func (Weighted) Pos(p grid.Point) grid.Point { return p }
