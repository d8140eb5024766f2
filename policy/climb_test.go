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

func TestParseHeightmap(t *testing.T) {
	h, err := policy.ParseHeightmap(strings.NewReader(heightmap))
	require.NoError(t, err)

	assert.Equal(t, grid.Point{Row: 0, Col: 0}, h.Start)
	assert.Equal(t, grid.Point{Row: 2, Col: 5}, h.End)
	assert.Equal(t, 0, h.Grid.At(h.Start))
	assert.Equal(t, 25, h.Grid.At(h.End))
	assert.Equal(t, 5, h.Grid.Rows())
	assert.Equal(t, 8, h.Grid.Cols())
}

func TestParseHeightmap_Errors(t *testing.T) {
	_, err := policy.ParseHeightmap(strings.NewReader("Sab1\nabcE\n"))
	assert.ErrorIs(t, err, policy.ErrBadHeight)

	_, err = policy.ParseHeightmap(strings.NewReader("abc\nabc\n"))
	assert.ErrorIs(t, err, policy.ErrMissingMarker)

	_, err = policy.ParseHeightmap(strings.NewReader("SabE\nab\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestClimb_Heightmap(t *testing.T) {
	h, err := policy.ParseHeightmap(strings.NewReader(heightmap))
	require.NoError(t, err)

	cost, ok := search.Search[grid.Point](h.Start, h.Ascent())
	require.True(t, ok)
	assert.Equal(t, int64(31), cost)

	cost, ok = search.Search[grid.Point](h.End, h.Descent())
	require.True(t, ok)
	assert.Equal(t, int64(29), cost)
}

func TestClimb_RiseLimit(t *testing.T) {
	// a cliff of two levels between the columns
	g, err := grid.New([][]int{{0, 2}, {1, 2}})
	require.NoError(t, err)
	target := grid.Point{Row: 0, Col: 1}

	cost, ok := search.Search[grid.Point](grid.Point{}, policy.Climb{Grid: g, Target: target, MaxRise: 1})
	require.True(t, ok)
	assert.Equal(t, int64(3), cost)

	_, ok = search.Search[grid.Point](grid.Point{}, policy.Climb{Grid: g, Target: target, MaxRise: 0})
	assert.False(t, ok)

	// reversed, dropping from 2 to 0 is the forbidden move
	cost, ok = search.Search[grid.Point](target, policy.Climb{Grid: g, Target: grid.Point{}, MaxRise: 1, Reverse: true})
	require.True(t, ok)
	assert.Equal(t, int64(3), cost)
}
