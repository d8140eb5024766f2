package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrStartOutOfBounds is returned when the start point is outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start point out of bounds")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")
)

// Option configures a walk.
type Option func(*Options)

// Options tune a walk. The zero value walks every in-bounds cell with a
// background context.
type Options struct {
	Ctx    context.Context                 // checked once per level
	Filter func(curr, next grid.Point) bool // false forbids the move curr→next
}

// WithContext stops the walk with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilter forbids every move for which fn returns false.
// Filters compose: a move must pass all of them.
func WithFilter(fn func(curr, next grid.Point) bool) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		if prev := o.Filter; prev != nil {
			o.Filter = func(curr, next grid.Point) bool { return prev(curr, next) && fn(curr, next) }
			return
		}
		o.Filter = fn
	}
}

// WithWalls forbids every move into a cell whose value is wall.
func WithWalls(g *grid.Grid, wall int) Option {
	return WithFilter(func(_, next grid.Point) bool {
		return g.At(next) != wall
	})
}

// Result holds the step counts and parent links of one walk.
// Order lists reached cells level by level.
type Result struct {
	Order []grid.Point

	g      *grid.Grid
	depth  []int // -1 when unreached
	parent []int // -1 for the start and unreached cells
}

// Depth returns the step count from the start to p.
func (r *Result) Depth(p grid.Point) (int, bool) {
	if !r.g.InBounds(p) {
		return 0, false
	}
	d := r.depth[r.g.Index(p)]
	return d, d >= 0
}

// Reached reports whether p was discovered.
func (r *Result) Reached(p grid.Point) bool {
	_, ok := r.Depth(p)
	return ok
}

// Parent returns the cell p was discovered from. The start has none.
func (r *Result) Parent(p grid.Point) (grid.Point, bool) {
	if !r.Reached(p) {
		return grid.Point{}, false
	}
	i := r.parent[r.g.Index(p)]
	if i < 0 {
		return grid.Point{}, false
	}
	return r.g.Coordinate(i), true
}

// PathTo returns the cells from the start to dest, both included.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	d, ok := r.Depth(dest)
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := make([]grid.Point, d+1)
	for i := r.g.Index(dest); d >= 0; d-- {
		path[d] = r.g.Coordinate(i)
		i = r.parent[i]
	}

	return path, nil
}
