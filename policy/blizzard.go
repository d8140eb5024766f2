package policy

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Valley is a walled basin swept by blizzards that move one cell per minute
// and wrap around inside the walls. Blizzard positions are a pure function of
// the minute, so they are looked up from the initial map rather than simulated.
type Valley struct {
	Grid        *grid.Grid
	Entry, Exit grid.Point
	inner       grid.Point // interior height and width
	period      int        // lcm of the interior sides
}

// ParseValley reads a valley map: a '#' ring with one gap in the top row
// (entry) and one in the bottom row (exit), and '>' '<' '^' 'v' blizzards.
func ParseValley(r io.Reader) (*Valley, error) {
	g, err := grid.ParseChars(r)
	if err != nil {
		return nil, err
	}
	if g.Rows() < 3 || g.Cols() < 3 {
		return nil, fmt.Errorf("%w: %dx%d is too small", ErrBadValley, g.Rows(), g.Cols())
	}

	entry, okIn := gap(g, 0)
	exit, okOut := gap(g, g.Rows()-1)
	if !okIn || !okOut {
		return nil, fmt.Errorf("%w: need one opening in the top and bottom walls", ErrBadValley)
	}

	h, w := g.Rows()-2, g.Cols()-2
	return &Valley{
		Grid:   g,
		Entry:  entry,
		Exit:   exit,
		inner:  grid.Point{Row: h, Col: w},
		period: h / gcd(h, w) * w,
	}, nil
}

// Period returns the number of minutes after which the blizzards repeat.
func (v *Valley) Period() int { return v.period }

// Blizzard returns the policy for one leg of a trip that ends at target.
func (v *Valley) Blizzard(target grid.Point) Blizzard {
	return Blizzard{Valley: v, Target: target}
}

// Trip walks through the given stops in order, each leg starting at the
// minute the previous one ended, and returns the total minutes.
// It reports false if any leg is impossible.
func (v *Valley) Trip(stops ...grid.Point) (int64, bool) {
	total, _, ok := v.route(stops, false)
	return total, ok
}

// Route is Trip that also returns every state visited, legs joined end to end.
func (v *Valley) Route(stops ...grid.Point) (int64, []Moment, bool) {
	return v.route(stops, true)
}

func (v *Valley) route(stops []grid.Point, withPath bool) (int64, []Moment, bool) {
	var (
		total int64
		path  []Moment
	)
	for i := 1; i < len(stops); i++ {
		start := Moment{Pos: stops[i-1], Tick: int(total % int64(v.period))}
		var opts []search.Option[Moment]
		if withPath {
			opts = append(opts, search.WithReturnPath[Moment]())
		}
		res := search.Run[Moment](start, v.Blizzard(stops[i]), opts...)
		if !res.Found {
			return 0, nil, false
		}
		if len(path) > 0 && len(res.Path) > 0 {
			res.Path = res.Path[1:]
		}
		path = append(path, res.Path...)
		total += res.Cost
	}

	return total, path, true
}

// Occupied reports whether any blizzard covers p at minute t.
func (v *Valley) Occupied(p grid.Point, t int) bool {
	r, c := p.Row-1, p.Col-1
	if r < 0 || c < 0 || r >= v.inner.Row || c >= v.inner.Col {
		return false
	}
	h, w := v.inner.Row, v.inner.Col
	return v.Grid.At(grid.Point{Row: p.Row, Col: 1 + mod(c-t, w)}) == '>' ||
		v.Grid.At(grid.Point{Row: p.Row, Col: 1 + mod(c+t, w)}) == '<' ||
		v.Grid.At(grid.Point{Row: 1 + mod(r-t, h), Col: p.Col}) == 'v' ||
		v.Grid.At(grid.Point{Row: 1 + mod(r+t, h), Col: p.Col}) == '^'
}

// open reports whether p is inside the valley: the interior, entry or exit.
func (v *Valley) open(p grid.Point) bool {
	if p == v.Entry || p == v.Exit {
		return true
	}
	return p.Row >= 1 && p.Row <= v.inner.Row && p.Col >= 1 && p.Col <= v.inner.Col
}

// Blizzard moves 4-ways or waits, one minute per move, and never shares a
// cell with a blizzard. Tick wraps at the valley period.
type Blizzard struct {
	Valley *Valley
	Target grid.Point
}

var _ Located[Moment] = Blizzard{}

// Neighbors appends every safe cell for the next minute, including staying put.
func (b Blizzard) Neighbors(s Moment, buf []search.Edge[Moment]) []search.Edge[Moment] {
	next := (s.Tick + 1) % b.Valley.period
	for _, dir := range [...]grid.Direction{grid.None, grid.North, grid.East, grid.South, grid.West} {
		q := s.Pos.Step(dir)
		if !b.Valley.open(q) || b.Valley.Occupied(q, next) {
			continue
		}
		buf = append(buf, search.Edge[Moment]{To: Moment{Pos: q, Tick: next}, Cost: 1})
	}
	return buf
}

// IsGoal reports whether s reached the target.
func (b Blizzard) IsGoal(s Moment) bool { return s.Pos == b.Target }

// Start returns the state at at on minute 0.
func (Blizzard) Start(at grid.Point) Moment { return Moment{Pos: at} }

// Pos returns the cell of s.
func (Blizzard) Pos(s Moment) grid.Point { return s.Pos }

func gap(g *grid.Grid, row int) (grid.Point, bool) {
	var (
		found grid.Point
		n     int
	)
	for c := 0; c < g.Cols(); c++ {
		p := grid.Point{Row: row, Col: c}
		if g.At(p) != Wall {
			found = p
			n++
		}
	}
	return found, n == 1
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
