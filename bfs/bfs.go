package bfs

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
)

// BFS walks g outwards from start over orthogonal moves, one level at a time.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input. When the
// context ends mid-walk the partial result is returned with ctx.Err().
func BFS(g *grid.Grid, start grid.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Rows() * g.Cols()
	res := &Result{
		Order:  make([]grid.Point, 0, n),
		g:      g,
		depth:  make([]int, n),
		parent: make([]int, n),
	}
	for i := range res.depth {
		res.depth[i], res.parent[i] = -1, -1
	}

	s := g.Index(start)
	res.depth[s] = 0
	frontier, next := []int{s}, []int(nil)
	for level := 1; len(frontier) > 0; level++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		next = next[:0]
		for _, i := range frontier {
			next = res.expand(i, level, o.Filter, next)
		}
		frontier, next = next, frontier
	}

	return res, nil
}

// expand records cell i as visited and appends its undiscovered neighbors,
// at the given level, to next.
func (r *Result) expand(i, level int, filter func(curr, next grid.Point) bool, next []int) []int {
	p := r.g.Coordinate(i)
	r.Order = append(r.Order, p)
	for _, d := range grid.Offsets(grid.Conn4) {
		q := p.Add(d)
		if !r.g.InBounds(q) {
			continue
		}
		j := r.g.Index(q)
		if r.depth[j] >= 0 || (filter != nil && !filter(p, q)) {
			continue
		}
		r.depth[j], r.parent[j] = level, i
		next = append(next, j)
	}

	return next
}
