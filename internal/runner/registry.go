package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/policy"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for policy lookup and problem preparation.
var (
	ErrUnknownPolicy = errors.New("runner: unknown policy")
	ErrUnknownParam  = errors.New("runner: unknown parameter")
	ErrBadParam      = errors.New("runner: invalid parameter")
	ErrBadCell       = errors.New("runner: cell outside the grid")
	ErrUnreachable   = errors.New("runner: goal unreachable")
)

// Param documents one policy parameter.
type Param struct {
	Name    string
	Default string
	Help    string
}

// Spec is a registered policy.
type Spec struct {
	Name    string
	Summary string
	Input   string
	Params  []Param
	Build   func(input []byte, p Params) (*Problem, error)
}

// Outcome is the result of one search, with the path projected onto cells.
type Outcome struct {
	Found   bool
	Cost    int64
	Path    []grid.Point
	Settled int
	Pushed  int
	Stale   int
	// Detail carries a policy-specific extra answer.
	Detail string
}

// Problem is a parsed input bound to one policy.
type Problem struct {
	Grid  *grid.Grid
	Glyph func(v int) rune
	Start grid.Point
	Goal  grid.Point
	// AnyGoal marks policies whose goal is a class of cells rather than one
	// cell. Goal is then only a representative and cannot be overridden.
	AnyGoal bool
	solve   func(ctx context.Context, start, goal grid.Point) (Outcome, error)
}

// Solve runs a single search from start to goal. Errors come from the
// context or from a policy's extra answer, never from an unreachable goal.
func (p *Problem) Solve(ctx context.Context, start, goal grid.Point) (Outcome, error) {
	return p.solve(ctx, start, goal)
}

// offline adapts a search that never blocks on anything but the CPU.
func offline(fn func(start, goal grid.Point) Outcome) func(context.Context, grid.Point, grid.Point) (Outcome, error) {
	return func(_ context.Context, start, goal grid.Point) (Outcome, error) {
		return fn(start, goal), nil
	}
}

var registry = map[string]Spec{}

// Register adds s to the registry, replacing any spec of the same name.
func Register(s Spec) {
	registry[s.Name] = s
}

// Specs returns every registered policy sorted by name.
func Specs() []Spec {
	out := make([]Spec, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the named spec. Unknown names get a suggestion when one is
// close enough.
func Lookup(name string) (Spec, error) {
	if s, ok := registry[name]; ok {
		return s, nil
	}
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return Spec{}, unknown(ErrUnknownPolicy, name, names)
}

// Prepare parses input for the named policy.
func Prepare(name string, input []byte, params map[string]string) (*Problem, error) {
	spec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	known := make([]string, 0, len(spec.Params))
	for _, p := range spec.Params {
		known = append(known, p.Name)
	}
	for key := range params {
		if !contains(known, key) {
			return nil, unknown(ErrUnknownParam, key, known)
		}
	}

	prob, err := spec.Build(input, Params(params))
	if err != nil {
		return nil, fmt.Errorf("runner: %s: %w", name, err)
	}
	return prob, nil
}

// unknown wraps base with a "did you mean" hint for the closest candidate
// within a third of the name's length.
func unknown(base error, name string, candidates []string) error {
	sort.Strings(candidates)
	best, bestDist := "", len(name)/3+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return fmt.Errorf("%w: %q", base, name)
	}
	return fmt.Errorf("%w: %q (did you mean %q?)", base, name, best)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// solveLocated runs one search with path tracking and projects states onto cells.
func solveLocated[S comparable](p policy.Located[S], start grid.Point) Outcome {
	res := search.Run[S](p.Start(start), p, search.WithReturnPath[S]())
	return Outcome{
		Found:   res.Found,
		Cost:    res.Cost,
		Path:    project(res.Path, p.Pos),
		Settled: res.Settled,
		Pushed:  res.Pushed,
		Stale:   res.Stale,
	}
}

// project maps states to cells, folding repeats from turns or waits.
func project[S any](path []S, pos func(S) grid.Point) []grid.Point {
	var out []grid.Point
	for _, s := range path {
		p := pos(s)
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
