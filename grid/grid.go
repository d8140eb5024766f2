// Package grid provides an immutable rectangular grid of integer cells.
//
// Cells are addressed by Point{Row, Col}; (0,0) is the top-left corner.
// The grid never changes after construction, so it can be shared by any
// number of concurrent searches.
package grid

import "fmt"

var (
	offsets4 = []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = []Point{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Grid is an immutable rows×cols array of int cell values.
type Grid struct {
	rows, cols int
	cells      []int // row-major
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, h*w)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Filled returns a rows×cols grid with every cell set to v.
// Returns ErrEmptyGrid when either dimension is not positive.
func Filled(rows, cols, v int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]int, rows*cols)
	for i := range cells {
		cells[i] = v
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the value at p. It panics if p is out of bounds.
func (g *Grid) At(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point %v outside %dx%d", p, g.rows, g.cols))
	}
	return g.cells[g.Index(p)]
}

// AtOK returns the value at p and true, or 0 and false when p is out of bounds.
func (g *Grid) AtOK(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.Index(p)], true
}

// Index maps p to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// Offsets returns the neighbor offsets for conn. The slice must not be modified.
func Offsets(conn Connectivity) []Point {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p, clockwise from north.
func (g *Grid) Neighbors4(p Point) []Point {
	return g.neighbors(p, offsets4)
}

// Neighbors8 returns the in-bounds neighbors of p including diagonals.
func (g *Grid) Neighbors8(p Point) []Point {
	return g.neighbors(p, offsets8)
}

func (g *Grid) neighbors(p Point, offs []Point) []Point {
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell (row-major) holding v.
func (g *Grid) Find(v int) (Point, bool) {
	for i, c := range g.cells {
		if c == v {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// FindAll returns every cell holding v in row-major order.
func (g *Grid) FindAll(v int) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == v {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Values returns a deep copy of the cells as a 2D slice.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// With returns a copy of g where every listed point holds v.
// Points outside the grid are ignored.
func (g *Grid) With(v int, points ...Point) *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	for _, p := range points {
		if g.InBounds(p) {
			cells[g.Index(p)] = v
		}
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Tile returns the grid repeated n times in both directions. Tile (i, j)
// adds i+j to every value; values above wrap restart at 1, so with wrap 9
// a 9 in tile (0,1) becomes 1.
// Returns ErrEmptyGrid when n < 1.
func (g *Grid) Tile(n, wrap int) (*Grid, error) {
	if n < 1 || wrap < 1 {
		return nil, ErrEmptyGrid
	}
	rows, cols := g.rows*n, g.cols*n
	cells := make([]int, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			base := g.cells[(r%g.rows)*g.cols+c%g.cols]
			v := base + r/g.rows + c/g.cols
			v = (v-1)%wrap + 1
			cells[r*cols+c] = v
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}
