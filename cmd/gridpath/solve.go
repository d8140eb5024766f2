package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/runner"
)

// solveFlags are the flags shared by solve and watch; set flags override
// the run file.
type solveFlags struct {
	input   string
	policy  string
	params  []string
	starts  []string
	goal    string
	render  bool
	workers int
}

func (f *solveFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.input, "input", "", "puzzle input file")
	fs.StringVar(&f.policy, "policy", "", "movement policy (see 'gridpath policies')")
	fs.StringArrayVar(&f.params, "param", nil, "policy parameter as key=value (repeatable)")
	fs.StringArrayVar(&f.starts, "start", nil, "start cell as row,col (repeatable)")
	fs.StringVar(&f.goal, "goal", "", "goal cell as row,col")
	fs.BoolVar(&f.render, "render", false, "draw the best path over the grid")
	fs.IntVar(&f.workers, "workers", runtime.NumCPU(), "searches run in parallel")
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [RUNFILE]",
		Short: "Solve one problem from a run file, flags, or both",
		Example: `  gridpath solve run.hcl
  gridpath solve --input chiton.txt --policy weighted --param tile=5
  gridpath solve --input lava.txt --policy crucible --param min_run=4 --param max_run=10`,
		Args: maxOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			runFile := ""
			if len(args) == 1 {
				runFile = args[0]
			}
			j, err := a.prepare(cmd.Context(), runFile, f)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), j, f)
		},
	}
	f.register(cmd)
	return cmd
}

func maxOneArg(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageError("expected at most one run file, got %d arguments", len(args))
	}
	return nil
}

// job is a prepared problem with its resolved cells.
type job struct {
	policy  string
	input   string
	problem *runner.Problem
	starts  []grid.Point
	goal    *grid.Point
}

// prepare merges the run file with the flags, reads the input and resolves cells.
func (a *app) prepare(ctx context.Context, runFile string, f solveFlags) (*job, error) {
	var draft *config.Draft
	params := map[string]string{}
	j := &job{input: f.input, policy: f.policy}
	if runFile != "" {
		var err error
		if draft, err = config.Load(ctx, runFile); err != nil {
			return nil, err
		}
		if j.input == "" {
			j.input = draft.Input
		}
		if j.policy == "" {
			j.policy = draft.Policy
		}
		maps.Copy(params, draft.Params)
	}
	if j.input == "" || j.policy == "" {
		return nil, usageError("need a run file or both --input and --policy")
	}
	for _, kv := range f.params {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, usageError("--param %q: want key=value", kv)
		}
		params[k] = v
	}

	data, err := os.ReadFile(j.input)
	if err != nil {
		return nil, err
	}
	if j.problem, err = runner.Prepare(j.policy, data, params); err != nil {
		return nil, err
	}

	rows, cols := j.problem.Grid.Rows(), j.problem.Grid.Cols()
	if draft != nil {
		m, err := draft.Bind(rows, cols)
		if err != nil {
			return nil, err
		}
		j.starts, j.goal = m.Starts, m.Goal
	}
	if len(f.starts) > 0 {
		j.starts = nil
		for _, s := range f.starts {
			p, err := cellFlag("--start", s, rows, cols)
			if err != nil {
				return nil, err
			}
			j.starts = append(j.starts, p)
		}
	}
	if f.goal != "" {
		p, err := cellFlag("--goal", f.goal, rows, cols)
		if err != nil {
			return nil, err
		}
		j.goal = &p
	}

	ctxlog.FromContext(ctx).Debug("Prepared problem",
		"policy", j.policy,
		"input", j.input,
		"rows", rows,
		"cols", cols,
		"params", len(params),
	)
	return j, nil
}

func cellFlag(flag, s string, rows, cols int) (grid.Point, error) {
	v, err := config.ParseCell(s)
	if err != nil {
		return grid.Point{}, &ExitError{Code: exitUsage, Message: flag, Err: err}
	}
	p, err := config.ResolveCell(v, rows, cols)
	if err != nil {
		return grid.Point{}, &ExitError{Code: exitUsage, Message: flag, Err: err}
	}
	return p, nil
}

// run solves j and prints the report; an unreachable goal still prints.
func (a *app) run(ctx context.Context, j *job, f solveFlags) error {
	r := &runner.Runner{Workers: f.workers, Recorder: a.recorder}
	report, err := r.Solve(ctx, runner.Request{
		Policy:  j.policy,
		Problem: j.problem,
		Starts:  j.starts,
		Goal:    j.goal,
	})
	if err != nil && !errors.Is(err, runner.ErrUnreachable) {
		return err
	}
	printReport(a.stdout, report)

	if best, ok := report.BestResult(); ok && f.render {
		o := render.Overlay{Grid: j.problem.Grid, Glyph: j.problem.Glyph, Path: best.Path}
		if werr := render.Write(a.stdout, o, colorOut(a.stdout)); werr != nil {
			return werr
		}
	}
	return err
}

func printReport(w io.Writer, report *runner.Report) {
	fmt.Fprintf(w, "policy %s (run %s)\n", report.Policy, report.RunID)
	for _, res := range report.Results {
		if !res.Found {
			fmt.Fprintf(w, "%s -> %s: unreachable\n", res.Start, res.Goal)
			continue
		}
		fmt.Fprintf(w, "%s -> %s: cost %d, settled %d, pushed %d\n",
			res.Start, res.Goal, res.Cost, res.Settled, res.Pushed)
		if res.Detail != "" {
			fmt.Fprintf(w, "  %s\n", res.Detail)
		}
	}
	if best, ok := report.BestResult(); ok && len(report.Results) > 1 {
		fmt.Fprintf(w, "best %s -> %s: %d\n", best.Start, best.Goal, best.Cost)
	}
}

func colorOut(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.ColorFor(f)
}
