package policy

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// Memory is a Size×Size space into which Bytes fall one at a time, each
// corrupting its cell. The walk goes from the top-left to the bottom-right.
type Memory struct {
	Size  int
	Bytes []grid.Point
}

// ParseMemory reads "x,y" byte positions for a size×size space.
func ParseMemory(r io.Reader, size int) (*Memory, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	pts, err := grid.ParsePoints(r)
	if err != nil {
		return nil, err
	}
	for i, p := range pts {
		if p.Row < 0 || p.Col < 0 || p.Row >= size || p.Col >= size {
			return nil, fmt.Errorf("%w: byte %d at %s outside %dx%d", ErrBadSize, i, FormatXY(p), size, size)
		}
	}

	return &Memory{Size: size, Bytes: pts}, nil
}

// Exit returns the bottom-right cell.
func (m *Memory) Exit() grid.Point {
	return grid.Point{Row: m.Size - 1, Col: m.Size - 1}
}

// Grid returns the space after the first n bytes have fallen.
// n is clamped to [0, len(Bytes)].
func (m *Memory) Grid(n int) (*grid.Grid, error) {
	n = min(max(n, 0), len(m.Bytes))
	g, err := grid.Filled(m.Size, m.Size, Open)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, m.Size)
	}
	return g.With(Wall, m.Bytes[:n]...), nil
}

// Policy returns the step-count policy to the exit after n bytes.
func (m *Memory) Policy(n int) (Uniform, error) {
	g, err := m.Grid(n)
	if err != nil {
		return Uniform{}, err
	}
	return Uniform{Grid: g, Target: m.Exit(), Wall: Wall}, nil
}

// FirstBlocking returns the index of the first byte after which the exit is
// unreachable from the top-left cell. from is a byte count known to leave the
// exit reachable; the binary search starts there.
// Returns ErrNotBlocked when even all bytes leave a path open, or ctx.Err()
// once ctx is done.
func (m *Memory) FirstBlocking(ctx context.Context, from int) (int, error) {
	from = min(max(from, 0), len(m.Bytes))

	var failure error
	blocked := func(n int) bool {
		if failure != nil {
			return true
		}
		g, err := m.Grid(n)
		if err != nil {
			failure = err
			return true
		}
		origin := grid.Point{}
		if g.At(origin) == Wall {
			return true
		}
		res, err := bfs.BFS(g, origin, bfs.WithContext(ctx), bfs.WithWalls(g, Wall))
		if err != nil {
			failure = err
			return true
		}
		return !res.Reached(m.Exit())
	}

	n := from + sort.Search(len(m.Bytes)-from+1, func(i int) bool { return blocked(from + i) })
	if failure != nil {
		return -1, failure
	}
	if n > len(m.Bytes) {
		return -1, ErrNotBlocked
	}

	return n - 1, nil
}
