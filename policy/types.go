// Package policy defines the state types, sentinel errors and the Located
// contract shared by the grid search policies.
package policy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for policy construction and parsing.
var (
	// ErrMissingMarker indicates a map without its start or end marker.
	ErrMissingMarker = errors.New("policy: marker not found")
	// ErrBadHeight indicates a heightmap character outside a-z, S and E.
	ErrBadHeight = errors.New("policy: invalid elevation")
	// ErrBadRun indicates run limits with MaxRun < 1 or MinRun outside [0, MaxRun].
	ErrBadRun = errors.New("policy: invalid run limits")
	// ErrBadValley indicates a valley map without a wall ring, entry or exit.
	ErrBadValley = errors.New("policy: malformed valley")
	// ErrBadSize indicates a non-positive memory size or a byte outside it.
	ErrBadSize = errors.New("policy: invalid memory size")
	// ErrNotBlocked is returned by FirstBlocking when no byte ever cuts the exit off.
	ErrNotBlocked = errors.New("policy: exit never blocked")
)

// Map characters.
const (
	Wall  = '#'
	Open  = '.'
	Start = 'S'
	End   = 'E'
)

// DefaultTurnCost is the price of a 90° rotation for reindeer.
const DefaultTurnCost = 1000

// Located is a search policy whose states project back onto grid cells.
// Start builds the initial state at a cell; Pos recovers the cell of a state.
type Located[S comparable] interface {
	search.Policy[S]
	Start(at grid.Point) S
	Pos(s S) grid.Point
}

// Heading is a reindeer state: a cell and the direction it faces.
type Heading struct {
	Pos grid.Point
	Dir grid.Direction
}

// Momentum is a crucible state: a cell, the direction of the last move and
// how many moves in a row went that way. The start state has Dir None, Run 0.
type Momentum struct {
	Pos grid.Point
	Dir grid.Direction
	Run int
}

// Moment is a blizzard state: a cell and the minute modulo the valley period.
type Moment struct {
	Pos  grid.Point
	Tick int
}

// FormatXY prints p as "x,y", the column-first order puzzle inputs use.
func FormatXY(p grid.Point) string {
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}
