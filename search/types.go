// Package search defines the policy contract, options and result types
// for the constrained-state shortest-path engine.
package search

import (
	"errors"
	"math"
)

// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
// It is raised via panic from the option constructor, since a negative cap
// can never be satisfied and is always a programming error.
var ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

// Edge is a single legal move to state To with a non-negative cost.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Policy supplies the state graph to the engine.
//
// Neighbors appends every legal move out of s to buf and returns the extended
// slice. The engine passes a reused buffer with length 0, so implementations
// should only append. IsGoal reports whether s terminates the search.
type Policy[S comparable] interface {
	Neighbors(s S, buf []Edge[S]) []Edge[S]
	IsGoal(s S) bool
}

// NeighborsFunc is the function form of Policy.Neighbors.
type NeighborsFunc[S comparable] func(s S, buf []Edge[S]) []Edge[S]

// PolicyFuncs adapts a pair of plain functions to the Policy interface.
// A nil Goal never matches.
type PolicyFuncs[S comparable] struct {
	Next NeighborsFunc[S]
	Goal func(S) bool
}

// Neighbors calls f.Next.
func (f PolicyFuncs[S]) Neighbors(s S, buf []Edge[S]) []Edge[S] { return f.Next(s, buf) }

// IsGoal calls f.Goal, or reports false when it is nil.
func (f PolicyFuncs[S]) IsGoal(s S) bool {
	if f.Goal == nil {
		return false
	}
	return f.Goal(s)
}

// Options configures a single search call.
type Options[S comparable] struct {
	ReturnPath      bool                                             // Track predecessors and fill Result.Path
	AllPredecessors bool                                             // Record every equally cheap predecessor in Result.Ties
	MaxCost         int64                                            // Candidates above this are not relaxed (default math.MaxInt64)
	Capacity        int                                              // Size hint for the best-cost map and the frontier
	OnRelax         func(from, to S, candidate int64, improved bool) // Called for every examined edge
	OnSettle        func(s S, cost int64)                            // Called for every non-stale pop, before the goal check
}

// Option represents a functional option for configuring a search.
type Option[S comparable] func(*Options[S])

// DefaultOptions returns Options with no path tracking, no cost cap,
// a small capacity hint and no hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		Capacity:   64,
	}
}

// WithReturnPath enables predecessor tracking so Result.Path can be rebuilt.
func WithReturnPath[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.ReturnPath = true
	}
}

// WithAllPredecessors records, for every reached state, each predecessor
// that reaches it at its best cost, and keeps settling entries at the goal
// cost so that every equally cheap goal is found. Result.Ties, Result.Goals
// and Result.Cheapest become available.
func WithAllPredecessors[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.AllPredecessors = true
	}
}

// WithMaxCost stops relaxing edges whose candidate cost exceeds max.
// A goal beyond the cap is reported as unreachable.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost[S comparable](max int64) Option[S] {
	return func(o *Options[S]) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithCapacity pre-sizes the best-cost map and the frontier.
// Non-positive values keep the default.
func WithCapacity[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithOnRelax registers a hook called for every edge examined during relaxation.
func WithOnRelax[S comparable](fn func(from, to S, candidate int64, improved bool)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnSettle registers a hook called for every state popped with its final cost.
func WithOnSettle[S comparable](fn func(s S, cost int64)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the outcome of Run.
//
//   - Found:   whether a goal state was reached.
//   - Cost:    minimum total cost to Goal (0 when not found).
//   - Goal:    the goal state that was popped first.
//   - Path:    start … Goal, only with WithReturnPath.
//   - Goals:   every goal state settled at Cost, only with WithAllPredecessors.
//   - Ties:    state → all predecessors on its best cost, only with WithAllPredecessors.
//   - Costs:   the final best-cost map, including states never settled.
//   - Settled: non-stale pops (states expanded, plus the goal).
//   - Pushed:  frontier insertions, including the start.
//   - Stale:   frontier entries discarded on pop.
type Result[S comparable] struct {
	Found   bool
	Cost    int64
	Goal    S
	Path    []S
	Goals   []S
	Ties    map[S][]S
	Costs   map[S]int64
	Settled int
	Pushed  int
	Stale   int
}

// Cheapest returns the states lying on at least one minimum-cost path from
// the start to any state in Goals. It is nil unless the search found a goal
// with WithAllPredecessors.
func (r *Result[S]) Cheapest() map[S]bool {
	if !r.Found || r.Ties == nil {
		return nil
	}
	on := make(map[S]bool)
	stack := append([]S(nil), r.Goals...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if on[s] {
			continue
		}
		on[s] = true
		stack = append(stack, r.Ties[s]...)
	}

	return on
}
