package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, "run.hcl", `
input  = "chiton.txt"
policy = "weighted"
start  = [0, 0]
starts = [[1, 0], [0, min(3, cols - 1)]]
goal   = [rows - 1, cols - 1]
params = {
  tile = 5
  wrap = 9
}
`)
	d, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "weighted", d.Policy)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "chiton.txt"), d.Input)
	assert.Equal(t, "5", d.Params["tile"])

	m, err := d.Bind(10, 12)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 3}}, m.Starts)
	require.NotNil(t, m.Goal)
	assert.Equal(t, grid.Point{Row: 9, Col: 11}, *m.Goal)
	assert.Equal(t, map[string]string{"tile": "5", "wrap": "9"}, m.Params)
}

func TestLoad_HCLMinimal(t *testing.T) {
	path := writeFile(t, "run.hcl", "input = \"/abs/maze.txt\"\npolicy = \"reindeer\"\n")
	d, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/abs/maze.txt", d.Input)

	m, err := d.Bind(3, 3)
	require.NoError(t, err)
	assert.Empty(t, m.Starts)
	assert.Nil(t, m.Goal)
	assert.NotNil(t, m.Params)
}

func TestLoad_HCLErrors(t *testing.T) {
	_, err := config.Load(context.Background(), writeFile(t, "run.hcl", "input = \"x\"\n"))
	assert.Error(t, err)

	_, err = config.Load(context.Background(), writeFile(t, "run.hcl", "input = \n"))
	assert.Error(t, err)

	d, err := config.Load(context.Background(), writeFile(t, "run.hcl", "input = \"x\"\npolicy = \"uniform\"\ngoal = [rows, 0]\n"))
	require.NoError(t, err)
	_, err = d.Bind(3, 3)
	assert.ErrorIs(t, err, config.ErrBadCell)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
input: maze.txt
policy: reindeer
start: [1, 1]
goal: [-2, -2]
params:
  turn_cost: 1000
`)
	d, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "reindeer", d.Policy)
	assert.Equal(t, "1000", d.Params["turn_cost"])

	m, err := d.Bind(5, 7)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{Row: 1, Col: 1}}, m.Starts)
	assert.Equal(t, grid.Point{Row: 3, Col: 5}, *m.Goal)
	assert.Equal(t, "1000", m.Params["turn_cost"])
}

func TestLoad_YAMLErrors(t *testing.T) {
	_, err := config.Load(context.Background(), writeFile(t, "run.yml", "input: a.txt\npolicy: uniform\nbogus: 1\n"))
	assert.Error(t, err)

	_, err = config.Load(context.Background(), writeFile(t, "run.yml", "policy: uniform\n"))
	assert.ErrorIs(t, err, config.ErrMissingField)

	d, err := config.Load(context.Background(), writeFile(t, "run.yml", "input: a.txt\npolicy: uniform\nstart: [1, 2, 3]\n"))
	require.NoError(t, err)
	_, err = d.Bind(4, 4)
	assert.ErrorIs(t, err, config.ErrBadCell)
}

func TestForPath(t *testing.T) {
	for _, name := range []string{"a.hcl", "a.yaml", "A.YML"} {
		_, err := config.ForPath(name)
		assert.NoError(t, err, name)
	}
	_, err := config.ForPath("a.json")
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestParseAndResolveCell(t *testing.T) {
	v, err := config.ParseCell(" -1, 2")
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2}, v)

	p, err := config.ResolveCell(v, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 3, Col: 2}, p)

	for _, bad := range []string{"1", "a,b", "1,2,3"} {
		_, err := config.ParseCell(bad)
		assert.ErrorIs(t, err, config.ErrBadCell, bad)
	}

	_, err = config.ResolveCell([]int{-5, 0}, 4, 5)
	assert.ErrorIs(t, err, config.ErrBadCell)
}
