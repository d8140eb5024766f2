package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/telemetry"
)

// Runner executes the searches of one request.
type Runner struct {
	// Workers bounds concurrent searches; values below 1 mean one.
	Workers int
	// Recorder traces and measures searches; nil disables telemetry.
	Recorder *telemetry.Recorder
}

// Request names the policy and the cells to search between.
type Request struct {
	Policy  string
	Problem *Problem
	// Starts defaults to Problem.Start when empty.
	Starts []grid.Point
	// Goal defaults to Problem.Goal when nil.
	Goal *grid.Point
}

// Result is one search of a report.
type Result struct {
	Start    grid.Point
	Goal     grid.Point
	Duration time.Duration
	Outcome
}

// Report collects the searches of a run.
type Report struct {
	RunID   string
	Policy  string
	Results []Result
	// Best indexes the cheapest found result, or -1.
	Best int
}

// BestResult returns the cheapest found result, if any.
func (r *Report) BestResult() (Result, bool) {
	if r.Best < 0 {
		return Result{}, false
	}
	return r.Results[r.Best], true
}

// Solve runs one search per start, in parallel, and returns the report.
// When no start reaches the goal the report is still returned together
// with ErrUnreachable.
func (r *Runner) Solve(ctx context.Context, req Request) (*Report, error) {
	prob := req.Problem
	starts := req.Starts
	if len(starts) == 0 {
		starts = []grid.Point{prob.Start}
	}
	goal := prob.Goal
	if req.Goal != nil {
		if prob.AnyGoal {
			return nil, fmt.Errorf("%w: %s fixes its own goal", ErrBadParam, req.Policy)
		}
		goal = *req.Goal
	}
	for _, p := range append([]grid.Point{goal}, starts...) {
		if !prob.Grid.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrBadCell, p, prob.Grid.Rows(), prob.Grid.Cols())
		}
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Policy:  req.Policy,
		Results: make([]Result, len(starts)),
		Best:    -1,
	}
	logger := ctxlog.FromContext(ctx).With("run_id", report.RunID, "policy", req.Policy)
	logger.Info("Solving", "starts", len(starts), "goal", goal.String())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i, start := range starts {
		i, start := i, start
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.one(gctx, req.Policy, prob, start, goal)
			if err != nil {
				return err
			}
			report.Results[i] = res
			logger.Debug("Search finished",
				"start", start.String(),
				"found", res.Found,
				"cost", res.Cost,
				"settled", res.Settled,
				"duration", res.Duration,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	for i, res := range report.Results {
		if res.Found && (report.Best < 0 || res.Cost < report.Results[report.Best].Cost) {
			report.Best = i
		}
	}
	if report.Best < 0 {
		logger.Warn("Goal unreachable", "goal", goal.String())
		return report, ErrUnreachable
	}
	logger.Info("Solved", "cost", report.Results[report.Best].Cost)

	return report, nil
}

// one runs a single search inside its own span. Policies whose goal is a
// class of cells report the cell the path actually ends on.
func (r *Runner) one(ctx context.Context, policyName string, prob *Problem, start, goal grid.Point) (Result, error) {
	var span trace.Span
	if r.Recorder != nil {
		ctx, span = r.Recorder.StartSearch(ctx, policyName, start)
	}
	began := time.Now()
	out, err := prob.Solve(ctx, start, goal)
	took := time.Since(began)
	if r.Recorder != nil {
		r.Recorder.EndSearch(ctx, span, telemetry.Search{
			Policy:   policyName,
			Duration: took,
			Found:    out.Found,
			Cost:     out.Cost,
			Settled:  out.Settled,
			Pushed:   out.Pushed,
		})
	}
	if err != nil {
		return Result{}, err
	}
	if prob.AnyGoal && out.Found && len(out.Path) > 0 {
		goal = out.Path[len(out.Path)-1]
	}

	return Result{Start: start, Goal: goal, Duration: took, Outcome: out}, nil
}
