// Package grid defines core types and sentinel errors
// for grids, points and directions.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a character the parser cannot turn into a cell value.
	ErrBadCell = errors.New("grid: invalid cell character")
	// ErrBadPoint indicates a malformed "x,y" coordinate line.
	ErrBadPoint = errors.New("grid: invalid point")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate. Row grows downwards, Col grows to the right.
type Point struct {
	Row, Col int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Step returns the neighbor of p in direction dir. Step(None) returns p.
func (p Point) Step(dir Direction) Point {
	return p.Add(dir.Delta())
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats p as "row,col".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Direction is a compass heading. None is the "no heading yet" wildcard
// used by start states that may leave in any direction.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// Headings lists the four real directions in clockwise order.
var Headings = [4]Direction{North, East, South, West}

var deltas = [...]Point{
	None:  {0, 0},
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point {
	if int(d) >= len(deltas) {
		return Point{}
	}
	return deltas[d]
}

// Right returns d rotated 90° clockwise. None stays None.
func (d Direction) Right() Direction {
	if d == None {
		return None
	}
	return Headings[(int(d)-1+1)%4]
}

// Left returns d rotated 90° counter-clockwise. None stays None.
func (d Direction) Left() Direction {
	if d == None {
		return None
	}
	return Headings[(int(d)-1+3)%4]
}

// Reverse returns the opposite heading. None stays None.
func (d Direction) Reverse() Direction {
	if d == None {
		return None
	}
	return Headings[(int(d)-1+2)%4]
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// ParseDirection maps a name or arrow ("east", "E", ">") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "none":
		return None, nil
	case "north", "n", "N", "^", "up":
		return North, nil
	case "east", "e", "E", ">", "right":
		return East, nil
	case "south", "s", "S", "v", "down":
		return South, nil
	case "west", "w", "W", "<", "left":
		return West, nil
	}
	return None, fmt.Errorf("grid: unknown direction %q", s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
