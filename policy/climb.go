package policy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Climb walks an elevation grid at cost 1 per step.
//
// Going forward a step may rise at most MaxRise and drop any amount.
// Reverse flips the rule (drop at most MaxRise, rise any amount), which is
// the same walk traced backwards from the summit.
//
// With ByHeight set the search ends at the first cell whose elevation is
// Height and Target is ignored.
type Climb struct {
	Grid     *grid.Grid
	Target   grid.Point
	MaxRise  int
	Reverse  bool
	ByHeight bool
	Height   int
}

var _ Located[grid.Point] = Climb{}

// Neighbors appends the reachable 4-neighbors of p.
func (c Climb) Neighbors(p grid.Point, buf []search.Edge[grid.Point]) []search.Edge[grid.Point] {
	h := c.Grid.At(p)
	for _, d := range grid.Offsets(grid.Conn4) {
		q := p.Add(d)
		v, ok := c.Grid.AtOK(q)
		if !ok {
			continue
		}
		rise := v - h
		if c.Reverse {
			rise = -rise
		}
		if rise > c.MaxRise {
			continue
		}
		buf = append(buf, search.Edge[grid.Point]{To: q, Cost: 1})
	}
	return buf
}

// IsGoal reports whether p ends the climb.
func (c Climb) IsGoal(p grid.Point) bool {
	if c.ByHeight {
		return c.Grid.At(p) == c.Height
	}
	return p == c.Target
}

// Start returns at.
func (Climb) Start(at grid.Point) grid.Point { return at }

// Pos returns p.
func (Climb) Pos(p grid.Point) grid.Point { return p }

// Heightmap is a parsed elevation map with its start and summit cells.
// Elevations run from 0 ('a') to 25 ('z'); S sits at 'a' and E at 'z'.
type Heightmap struct {
	Grid       *grid.Grid
	Start, End grid.Point
}

// ParseHeightmap reads a letter elevation map with one S and one E marker.
func ParseHeightmap(r io.Reader) (*Heightmap, error) {
	var (
		rows       [][]int
		start, end = grid.Point{Row: -1}, grid.Point{Row: -1}
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for col, ch := range line {
			p := grid.Point{Row: len(rows), Col: col}
			switch {
			case ch == Start:
				start = p
				ch = 'a'
			case ch == End:
				end = p
				ch = 'z'
			case ch < 'a' || ch > 'z':
				return nil, fmt.Errorf("%w: %q at %v", ErrBadHeight, ch, p)
			}
			row = append(row, int(ch-'a'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("policy: read heightmap: %w", err)
	}

	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	if start.Row < 0 || end.Row < 0 {
		return nil, fmt.Errorf("%w: heightmap needs both S and E", ErrMissingMarker)
	}

	return &Heightmap{Grid: g, Start: start, End: end}, nil
}

// Ascent climbs from Start to End rising at most one level per step.
func (h *Heightmap) Ascent() Climb {
	return Climb{Grid: h.Grid, Target: h.End, MaxRise: 1}
}

// Descent walks back from End to the nearest lowest cell, the reverse of
// finding the best trailhead.
func (h *Heightmap) Descent() Climb {
	return Climb{Grid: h.Grid, MaxRise: 1, Reverse: true, ByHeight: true, Height: 0}
}
