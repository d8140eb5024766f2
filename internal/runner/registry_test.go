package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/runner"
)

func fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestSpecs_Sorted(t *testing.T) {
	var names []string
	for _, s := range runner.Specs() {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.Summary, s.Name)
		assert.NotNil(t, s.Build, s.Name)
	}
	assert.Equal(t, []string{"blizzard", "climb", "crucible", "memory", "reindeer", "uniform", "weighted"}, names)
}

func TestLookup_Suggestion(t *testing.T) {
	_, err := runner.Lookup("crucibel")
	require.ErrorIs(t, err, runner.ErrUnknownPolicy)
	assert.Contains(t, err.Error(), `did you mean "crucible"?`)

	_, err = runner.Lookup("teleport")
	require.ErrorIs(t, err, runner.ErrUnknownPolicy)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestPrepare_UnknownParam(t *testing.T) {
	_, err := runner.Prepare("crucible", fixture(t, "lava.txt"), map[string]string{"max_rn": "3"})
	require.ErrorIs(t, err, runner.ErrUnknownParam)
	assert.Contains(t, err.Error(), `did you mean "max_run"?`)
}

func TestPrepare_BadParams(t *testing.T) {
	cases := []struct {
		policy string
		input  string
		params map[string]string
	}{
		{"weighted", "chiton.txt", map[string]string{"tile": "many"}},
		{"uniform", "rooms.txt", map[string]string{"wall": "##"}},
		{"climb", "heightmap.txt", map[string]string{"reverse": "maybe"}},
		{"reindeer", "maze.txt", map[string]string{"turn_cost": "-1"}},
		{"reindeer", "maze.txt", map[string]string{"facing": "sideways"}},
		{"crucible", "lava.txt", map[string]string{"min_run": "5", "max_run": "3"}},
		{"blizzard", "valley.txt", map[string]string{"legs": "0"}},
		{"memory", "bytes.txt", map[string]string{"size": "x"}},
	}
	for _, tc := range cases {
		_, err := runner.Prepare(tc.policy, fixture(t, tc.input), tc.params)
		assert.ErrorIs(t, err, runner.ErrBadParam, "%s %v", tc.policy, tc.params)
	}
}

func TestPrepare_BadInput(t *testing.T) {
	_, err := runner.Prepare("weighted", []byte("12\n3\n"), nil)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestBuiltins(t *testing.T) {
	cases := []struct {
		name   string
		policy string
		input  string
		params map[string]string
		cost   int64
	}{
		{"weighted", "weighted", "chiton.txt", nil, 40},
		{"weighted tiled", "weighted", "chiton.txt", map[string]string{"tile": "5"}, 315},
		{"uniform", "uniform", "rooms.txt", nil, 4},
		{"climb", "climb", "heightmap.txt", nil, 31},
		{"climb reverse", "climb", "heightmap.txt", map[string]string{"reverse": "true"}, 29},
		{"reindeer", "reindeer", "maze.txt", nil, 7036},
		{"crucible", "crucible", "lava.txt", nil, 102},
		{"ultra crucible", "crucible", "lava.txt", map[string]string{"min_run": "4", "max_run": "10"}, 94},
		{"blizzard", "blizzard", "valley.txt", nil, 18},
		{"blizzard round trip", "blizzard", "valley.txt", map[string]string{"legs": "3"}, 54},
		{"memory", "memory", "bytes.txt", map[string]string{"size": "7", "fallen": "12"}, 22},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prob, err := runner.Prepare(tc.policy, fixture(t, tc.input), tc.params)
			require.NoError(t, err)

			out, err := prob.Solve(context.Background(), prob.Start, prob.Goal)
			require.NoError(t, err)
			require.True(t, out.Found)
			assert.Equal(t, tc.cost, out.Cost)
			require.NotEmpty(t, out.Path)
			assert.Equal(t, prob.Start, out.Path[0])
			for i := 1; i < len(out.Path); i++ {
				assert.Equal(t, 1, out.Path[i-1].Manhattan(out.Path[i]), "step %d", i)
			}
		})
	}
}

func TestBuiltins_MemoryBlocker(t *testing.T) {
	prob, err := runner.Prepare("memory", fixture(t, "bytes.txt"),
		map[string]string{"size": "7", "fallen": "12", "blocker": "true"})
	require.NoError(t, err)

	out, err := prob.Solve(context.Background(), prob.Start, prob.Goal)
	require.NoError(t, err)
	assert.Equal(t, int64(22), out.Cost)
	assert.Equal(t, "first blocking byte 6,1 (#20)", out.Detail)

	// from another start the search restarts at zero fallen bytes
	out, err = prob.Solve(context.Background(), grid.Point{Row: 0, Col: 1}, prob.Goal)
	require.NoError(t, err)
	assert.Equal(t, "first blocking byte 6,1 (#20)", out.Detail)
}

func TestBuiltins_MemoryNeverBlocked(t *testing.T) {
	prob, err := runner.Prepare("memory", []byte("1,0\n"), map[string]string{"size": "3", "fallen": "0", "blocker": "true"})
	require.NoError(t, err)

	out, err := prob.Solve(context.Background(), prob.Start, prob.Goal)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Cost)
	assert.Equal(t, "no byte cuts the exit off", out.Detail)
}

func TestBuiltins_MemoryBlockerCancelled(t *testing.T) {
	prob, err := runner.Prepare("memory", fixture(t, "bytes.txt"),
		map[string]string{"size": "7", "fallen": "12", "blocker": "true"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = prob.Solve(ctx, prob.Start, prob.Goal)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuiltins_ReindeerSeats(t *testing.T) {
	prob, err := runner.Prepare("reindeer", fixture(t, "maze.txt"), map[string]string{"seats": "true"})
	require.NoError(t, err)

	out, err := prob.Solve(context.Background(), prob.Start, prob.Goal)
	require.NoError(t, err)
	assert.Equal(t, int64(7036), out.Cost)
	assert.Equal(t, "45 tiles on a cheapest route", out.Detail)

	prob, err = runner.Prepare("reindeer", fixture(t, "maze.txt"), nil)
	require.NoError(t, err)
	out, err = prob.Solve(context.Background(), prob.Start, prob.Goal)
	require.NoError(t, err)
	assert.Empty(t, out.Detail)

	_, err = runner.Prepare("reindeer", fixture(t, "maze.txt"), map[string]string{"seats": "maybe"})
	assert.ErrorIs(t, err, runner.ErrBadParam)
}

func TestBuiltins_ClimbReverseAnyGoal(t *testing.T) {
	prob, err := runner.Prepare("climb", fixture(t, "heightmap.txt"), map[string]string{"reverse": "true"})
	require.NoError(t, err)
	assert.True(t, prob.AnyGoal)

	prob, err = runner.Prepare("climb", fixture(t, "heightmap.txt"), nil)
	require.NoError(t, err)
	assert.False(t, prob.AnyGoal)
}

func TestBuiltins_Glyph(t *testing.T) {
	prob, err := runner.Prepare("weighted", fixture(t, "chiton.txt"), nil)
	require.NoError(t, err)
	assert.Equal(t, '1', prob.Glyph(prob.Grid.At(grid.Point{})))

	prob, err = runner.Prepare("climb", fixture(t, "heightmap.txt"), nil)
	require.NoError(t, err)
	assert.Equal(t, 'b', prob.Glyph(prob.Grid.At(grid.Point{Row: 0, Col: 2})))
}

func TestParams(t *testing.T) {
	p := runner.Params{"n": "7", "ok": "true", "c": "#", "s": "east"}

	n, err := p.Int("n", 1)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	n, err = p.Int("missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ok, err := p.Bool("ok", false)
	require.NoError(t, err)
	assert.True(t, ok)

	r, err := p.Rune("c", '.')
	require.NoError(t, err)
	assert.Equal(t, '#', r)

	assert.Equal(t, "east", p.String("s", "west"))
	assert.Equal(t, "west", p.String("missing", "west"))

	_, err = runner.Params{"n": "x"}.Int("n", 0)
	assert.ErrorIs(t, err, runner.ErrBadParam)
	_, err = runner.Params{"ok": "x"}.Bool("ok", false)
	assert.ErrorIs(t, err, runner.ErrBadParam)
	_, err = runner.Params{"c": ""}.Rune("c", '.')
	assert.ErrorIs(t, err, runner.ErrBadParam)
}
