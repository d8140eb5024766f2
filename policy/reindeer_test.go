package policy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/policy"
	"github.com/katalvlaran/gridpath/search"
)

func solveMaze(t *testing.T, src string, turnCost int64) (int64, bool) {
	t.Helper()
	m, err := policy.ParseMaze(strings.NewReader(src))
	require.NoError(t, err)
	r := m.Reindeer(turnCost)
	return search.Search[policy.Heading](r.Start(m.Start), r)
}

func TestReindeer(t *testing.T) {
	tests := []struct {
		name     string
		maze     string
		turnCost int64
		want     int64
	}{
		{"corridor with one turn", turnCorridor, policy.DefaultTurnCost, 1005},
		{"fewer turns beat fewer steps", turnDetour, policy.DefaultTurnCost, 2018},
		{"fewer steps win when turns are cheap", turnDetour, 1, 14},
		{"sample maze", reindeerMaze, policy.DefaultTurnCost, 7036},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cost, ok := solveMaze(t, tc.maze, tc.turnCost)
			require.True(t, ok)
			assert.Equal(t, tc.want, cost)
		})
	}
}

func TestReindeer_StartFacing(t *testing.T) {
	g, err := grid.Filled(1, 1, policy.Open)
	require.NoError(t, err)

	r := policy.Reindeer{Grid: g, Wall: policy.Wall}
	assert.Equal(t, policy.Heading{Dir: grid.East}, r.Start(grid.Point{}))

	r.Facing = grid.North
	assert.Equal(t, policy.Heading{Dir: grid.North}, r.Start(grid.Point{}))
}

func TestReindeer_Moves(t *testing.T) {
	m, err := policy.ParseMaze(strings.NewReader(turnCorridor))
	require.NoError(t, err)
	r := m.Reindeer(7)

	got := r.Neighbors(r.Start(m.Start), nil)
	assert.Equal(t, []search.Edge[policy.Heading]{
		{To: policy.Heading{Pos: grid.Point{Row: 1, Col: 2}, Dir: grid.East}, Cost: 1},
		{To: policy.Heading{Pos: m.Start, Dir: grid.North}, Cost: 7},
		{To: policy.Heading{Pos: m.Start, Dir: grid.South}, Cost: 7},
	}, got)

	// facing a wall only the rotations remain
	got = r.Neighbors(policy.Heading{Pos: m.Start, Dir: grid.West}, nil)
	assert.Len(t, got, 2)
}

func TestParseMaze_MissingMarker(t *testing.T) {
	_, err := policy.ParseMaze(strings.NewReader("####\n#S.#\n####\n"))
	assert.ErrorIs(t, err, policy.ErrMissingMarker)
}

func TestReindeer_Seats(t *testing.T) {
	const square = "#####\n#..E#\n#S..#\n#####\n"
	tests := []struct {
		name     string
		maze     string
		turnCost int64
		want     int
	}{
		{"sample maze", reindeerMaze, policy.DefaultTurnCost, 45},
		{"single corridor", turnCorridor, policy.DefaultTurnCost, 6},
		{"one cheapest route", square, policy.DefaultTurnCost, 4},
		{"free turns open every monotone route", square, 0, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := policy.ParseMaze(strings.NewReader(tc.maze))
			require.NoError(t, err)
			seats, ok := m.Reindeer(tc.turnCost).Seats(m.Start)
			require.True(t, ok)
			assert.Equal(t, tc.want, seats)
		})
	}
}

func TestReindeer_SeatsUnreachable(t *testing.T) {
	m, err := policy.ParseMaze(strings.NewReader("#####\n#S#E#\n#####\n"))
	require.NoError(t, err)
	_, ok := m.Reindeer(policy.DefaultTurnCost).Seats(m.Start)
	assert.False(t, ok)
}
