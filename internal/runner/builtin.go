package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/policy"
)

func init() {
	Register(Spec{
		Name:    "weighted",
		Summary: "4-way moves paying the entered cell's digit (chiton risk)",
		Input:   "digit grid",
		Params: []Param{
			{Name: "tile", Default: "1", Help: "repeat the map n×n, each tile one higher"},
			{Name: "wrap", Default: "9", Help: "tiled values above this wrap back to 1"},
		},
		Build: buildWeighted,
	})
	Register(Spec{
		Name:    "uniform",
		Summary: "4-way moves at cost 1 around walls",
		Input:   "character map, optional S and E markers",
		Params: []Param{
			{Name: "wall", Default: "#", Help: "wall character"},
		},
		Build: buildUniform,
	})
	Register(Spec{
		Name:    "climb",
		Summary: "hill climbing on a letter heightmap",
		Input:   "a-z heightmap with S and E",
		Params: []Param{
			{Name: "max_rise", Default: "1", Help: "largest climb allowed in one step"},
			{Name: "reverse", Default: "false", Help: "walk down from E to the nearest 'a'; the goal cannot be set"},
		},
		Build: buildClimb,
	})
	Register(Spec{
		Name:    "reindeer",
		Summary: "steps cost 1, 90° rotations cost turn_cost",
		Input:   "'#' maze with S and E",
		Params: []Param{
			{Name: "turn_cost", Default: "1000", Help: "price of one rotation"},
			{Name: "facing", Default: "east", Help: "initial heading"},
			{Name: "seats", Default: "false", Help: "also count the tiles on any cheapest route"},
		},
		Build: buildReindeer,
	})
	Register(Spec{
		Name:    "crucible",
		Summary: "no reversing, bounded straight runs (lava heat loss)",
		Input:   "digit grid",
		Params: []Param{
			{Name: "min_run", Default: "0", Help: "straight moves required before turning or stopping"},
			{Name: "max_run", Default: "3", Help: "straight moves allowed before a forced turn"},
		},
		Build: buildCrucible,
	})
	Register(Spec{
		Name:    "blizzard",
		Summary: "cross a valley of wrapping blizzards, waiting is allowed",
		Input:   "valley map with '>' '<' '^' 'v' blizzards",
		Params: []Param{
			{Name: "legs", Default: "1", Help: "crossings, alternating start→goal and back"},
		},
		Build: buildBlizzard,
	})
	Register(Spec{
		Name:    "memory",
		Summary: "step count through falling corrupted bytes",
		Input:   "x,y byte positions",
		Params: []Param{
			{Name: "size", Default: "71", Help: "side of the square memory space"},
			{Name: "fallen", Default: "1024", Help: "bytes fallen before walking"},
			{Name: "blocker", Default: "false", Help: "also report the first byte that cuts the exit off"},
		},
		Build: buildMemory,
	})
}

func digitGlyph(v int) rune  { return rune('0' + v) }
func runeGlyph(v int) rune   { return rune(v) }
func heightGlyph(v int) rune { return rune('a' + v) }

func corner(g *grid.Grid) grid.Point {
	return grid.Point{Row: g.Rows() - 1, Col: g.Cols() - 1}
}

func buildWeighted(input []byte, p Params) (*Problem, error) {
	tile, err := p.Int("tile", 1)
	if err != nil {
		return nil, err
	}
	wrap, err := p.Int("wrap", 9)
	if err != nil {
		return nil, err
	}
	g, err := grid.ParseDigits(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	if tile > 1 {
		if g, err = g.Tile(tile, wrap); err != nil {
			return nil, err
		}
	}

	return &Problem{
		Grid:  g,
		Glyph: digitGlyph,
		Goal:  corner(g),
		solve: offline(func(start, goal grid.Point) Outcome {
			return solveLocated[grid.Point](policy.Weighted{Grid: g, Target: goal}, start)
		}),
	}, nil
}

func buildUniform(input []byte, p Params) (*Problem, error) {
	wall, err := p.Rune("wall", policy.Wall)
	if err != nil {
		return nil, err
	}
	g, err := grid.ParseChars(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(policy.Start)
	if !ok {
		start = grid.Point{}
	}
	goal, ok := g.Find(policy.End)
	if !ok {
		goal = corner(g)
	}

	return &Problem{
		Grid:  g,
		Glyph: runeGlyph,
		Start: start,
		Goal:  goal,
		solve: offline(func(start, goal grid.Point) Outcome {
			return solveLocated[grid.Point](policy.Uniform{Grid: g, Target: goal, Wall: int(wall)}, start)
		}),
	}, nil
}

func buildClimb(input []byte, p Params) (*Problem, error) {
	rise, err := p.Int("max_rise", 1)
	if err != nil {
		return nil, err
	}
	reverse, err := p.Bool("reverse", false)
	if err != nil {
		return nil, err
	}
	h, err := policy.ParseHeightmap(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	prob := &Problem{Grid: h.Grid, Glyph: heightGlyph, Start: h.Start, Goal: h.End}
	if reverse {
		prob.Start, prob.Goal = h.End, h.Start
		prob.AnyGoal = true
		prob.solve = offline(func(start, _ grid.Point) Outcome {
			c := h.Descent()
			c.MaxRise = rise
			return solveLocated[grid.Point](c, start)
		})
		return prob, nil
	}
	prob.solve = offline(func(start, goal grid.Point) Outcome {
		c := h.Ascent()
		c.Target, c.MaxRise = goal, rise
		return solveLocated[grid.Point](c, start)
	})
	return prob, nil
}

func buildReindeer(input []byte, p Params) (*Problem, error) {
	turn, err := p.Int("turn_cost", policy.DefaultTurnCost)
	if err != nil {
		return nil, err
	}
	if turn < 0 {
		return nil, fmt.Errorf("%w: turn_cost must not be negative", ErrBadParam)
	}
	facing, err := grid.ParseDirection(p.String("facing", "east"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParam, err)
	}
	seats, err := p.Bool("seats", false)
	if err != nil {
		return nil, err
	}
	m, err := policy.ParseMaze(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	return &Problem{
		Grid:  m.Grid,
		Glyph: runeGlyph,
		Start: m.Start,
		Goal:  m.End,
		solve: offline(func(start, goal grid.Point) Outcome {
			r := m.Reindeer(int64(turn))
			r.Target, r.Facing = goal, facing
			out := solveLocated[policy.Heading](r, start)
			if seats && out.Found {
				if n, ok := r.Seats(start); ok {
					out.Detail = fmt.Sprintf("%d tiles on a cheapest route", n)
				}
			}
			return out
		}),
	}, nil
}

func buildCrucible(input []byte, p Params) (*Problem, error) {
	minRun, err := p.Int("min_run", 0)
	if err != nil {
		return nil, err
	}
	maxRun, err := p.Int("max_run", 3)
	if err != nil {
		return nil, err
	}
	g, err := grid.ParseDigits(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	if _, err := policy.NewCrucible(g, grid.Point{}, minRun, maxRun); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParam, err)
	}

	return &Problem{
		Grid:  g,
		Glyph: digitGlyph,
		Goal:  corner(g),
		solve: offline(func(start, goal grid.Point) Outcome {
			c := policy.Crucible{Grid: g, Target: goal, MinRun: minRun, MaxRun: maxRun}
			return solveLocated[policy.Momentum](c, start)
		}),
	}, nil
}

func buildBlizzard(input []byte, p Params) (*Problem, error) {
	legs, err := p.Int("legs", 1)
	if err != nil {
		return nil, err
	}
	if legs < 1 {
		return nil, fmt.Errorf("%w: legs must be at least 1", ErrBadParam)
	}
	v, err := policy.ParseValley(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	return &Problem{
		Grid:  v.Grid,
		Glyph: runeGlyph,
		Start: v.Entry,
		Goal:  v.Exit,
		solve: offline(func(start, goal grid.Point) Outcome {
			stops := []grid.Point{start}
			for i := 0; i < legs; i++ {
				if i%2 == 0 {
					stops = append(stops, goal)
				} else {
					stops = append(stops, start)
				}
			}
			minutes, path, ok := v.Route(stops...)
			return Outcome{
				Found: ok,
				Cost:  minutes,
				Path:  project(path, v.Blizzard(goal).Pos),
			}
		}),
	}, nil
}

func buildMemory(input []byte, p Params) (*Problem, error) {
	size, err := p.Int("size", 71)
	if err != nil {
		return nil, err
	}
	fallen, err := p.Int("fallen", 1024)
	if err != nil {
		return nil, err
	}
	blocker, err := p.Bool("blocker", false)
	if err != nil {
		return nil, err
	}
	m, err := policy.ParseMemory(bytes.NewReader(input), size)
	if err != nil {
		return nil, err
	}
	g, err := m.Grid(fallen)
	if err != nil {
		return nil, err
	}

	return &Problem{
		Grid:  g,
		Glyph: runeGlyph,
		Goal:  m.Exit(),
		solve: func(ctx context.Context, start, goal grid.Point) (Outcome, error) {
			u := policy.Uniform{Grid: g, Target: goal, Wall: policy.Wall}
			out := solveLocated[grid.Point](u, start)
			if !blocker {
				return out, nil
			}
			// a route found from the corner proves the first fallen bytes leave it open
			from := 0
			if out.Found && start == (grid.Point{}) && goal == m.Exit() {
				from = fallen
			}
			detail, err := blockerDetail(ctx, m, from)
			if err != nil {
				return out, err
			}
			out.Detail = detail
			return out, nil
		},
	}, nil
}

func blockerDetail(ctx context.Context, m *policy.Memory, from int) (string, error) {
	idx, err := m.FirstBlocking(ctx, from)
	switch {
	case errors.Is(err, policy.ErrNotBlocked):
		return "no byte cuts the exit off", nil
	case err != nil:
		return "", err
	}
	return fmt.Sprintf("first blocking byte %s (#%d)", policy.FormatXY(m.Bytes[idx]), idx), nil
}
