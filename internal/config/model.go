package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for run file loading.
var (
	ErrUnknownFormat = errors.New("config: unknown run file format")
	ErrMissingField  = errors.New("config: required field missing")
	ErrBadCell       = errors.New("config: invalid cell")
)

// Model is a fully resolved run file.
type Model struct {
	// Input is the path of the puzzle input, relative paths already joined
	// onto the run file's directory.
	Input  string
	Policy string
	Starts []grid.Point
	Goal   *grid.Point
	Params map[string]string
}

// Draft is a run file whose cells are not resolved yet.
type Draft struct {
	Path   string
	Input  string
	Policy string
	// Params never depend on the grid, so they are known before Bind.
	Params map[string]string
	bind   func(rows, cols int) (*Model, error)
}

// Bind resolves the start and goal cells against a rows×cols grid.
func (d *Draft) Bind(rows, cols int) (*Model, error) {
	m, err := d.bind(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", d.Path, err)
	}
	return m, nil
}

// Loader reads one run file format.
type Loader interface {
	Load(ctx context.Context, path string) (*Draft, error)
}

// ForPath picks a Loader from the file extension.
func ForPath(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return HCLLoader{}, nil
	case ".yaml", ".yml":
		return YAMLLoader{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads path with the loader matching its extension.
func Load(ctx context.Context, path string) (*Draft, error) {
	l, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, path)
}

// ParseCell parses "row,col". Negative values are kept for ResolveCell.
func ParseCell(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q, want row,col", ErrBadCell, s)
	}
	out := make([]int, 2)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadCell, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// ResolveCell turns a [row, col] pair into a point of a rows×cols grid.
// Negative indices count from the end.
func ResolveCell(v []int, rows, cols int) (grid.Point, error) {
	if len(v) != 2 {
		return grid.Point{}, fmt.Errorf("%w: %v has %d coordinates, want 2", ErrBadCell, v, len(v))
	}
	p := grid.Point{Row: v[0], Col: v[1]}
	if p.Row < 0 {
		p.Row += rows
	}
	if p.Col < 0 {
		p.Col += cols
	}
	if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
		return grid.Point{}, fmt.Errorf("%w: %v outside %dx%d", ErrBadCell, v, rows, cols)
	}
	return p, nil
}

// placement is the unresolved part of a run file shared by both formats.
type placement struct {
	start  []int
	starts [][]int
	goal   []int
	params map[string]string
}

func (pl placement) resolve(input, policy string, rows, cols int) (*Model, error) {
	m := &Model{Input: input, Policy: policy, Params: orEmpty(pl.params)}

	raw := pl.starts
	if pl.start != nil {
		raw = append([][]int{pl.start}, raw...)
	}
	for _, v := range raw {
		p, err := ResolveCell(v, rows, cols)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		m.Starts = append(m.Starts, p)
	}

	if pl.goal != nil {
		p, err := ResolveCell(pl.goal, rows, cols)
		if err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
		m.Goal = &p
	}

	return m, nil
}

// inputPath joins a relative input path onto the run file's directory.
func inputPath(runFile, input string) string {
	if input == "" || filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(filepath.Dir(runFile), input)
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
