// Package search implements Dijkstra's algorithm over an implicit state graph.
//
// Notes on implementation choices:
//
//   - States are discovered through Policy.Neighbors; nothing is enumerated up front.
//   - We use a "lazy" decrease-key strategy: improved states are pushed again and
//     older heap entries are ignored when popped.
//   - A state is only pushed on strict improvement, so each (state, cost) pair is
//     in the heap at most once.
//   - Equal-cost entries pop in insertion order, which keeps paths reproducible.
package search

import (
	"container/heap"
)

// Search returns the minimum total cost from start to any state satisfying
// p.IsGoal, and false if no goal state is reachable.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Search[S comparable](start S, p Policy[S], opts ...Option[S]) (int64, bool) {
	res := Run(start, p, opts...)

	return res.Cost, res.Found
}

// SearchFunc is Search with the policy given as two functions.
func SearchFunc[S comparable](start S, isGoal func(S) bool, neighbors NeighborsFunc[S], opts ...Option[S]) (int64, bool) {
	return Search[S](start, PolicyFuncs[S]{Next: neighbors, Goal: isGoal}, opts...)
}

// Distances explores every state reachable from start and returns the final
// best-cost map. With WithMaxCost only states within the cap are included.
func Distances[S comparable](start S, neighbors NeighborsFunc[S], opts ...Option[S]) map[S]int64 {
	res := Run[S](start, PolicyFuncs[S]{Next: neighbors}, opts...)

	return res.Costs
}

// Run executes one search from start under policy p and returns the full Result.
// Each call allocates its own best-cost map, predecessor map and frontier.
func Run[S comparable](start S, p Policy[S], opts ...Option[S]) *Result[S] {
	// 1) Build options.
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Per-call state.
	r := &runner[S]{
		policy:  p,
		options: cfg,
		best:    make(map[S]int64, cfg.Capacity),
		pq:      make(frontier[S], 0, cfg.Capacity),
		res:     &Result[S]{},
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S, cfg.Capacity)
	}
	if cfg.AllPredecessors {
		r.res.Ties = make(map[S][]S, cfg.Capacity)
	}

	// 3) Seed and loop.
	r.init(start)
	r.process()

	r.res.Costs = r.best
	if r.res.Found && cfg.ReturnPath {
		r.res.Path = r.path(start, r.res.Goal)
	}

	return r.res
}

// runner holds the mutable state for a single search execution.
type runner[S comparable] struct {
	policy  Policy[S]
	options Options[S]
	best    map[S]int64 // state → lowest cost discovered so far
	prev    map[S]S     // state → predecessor on that cost; nil unless ReturnPath
	pq      frontier[S]
	seq     uint64
	buf     []Edge[S] // reused across Neighbors calls
	res     *Result[S]
}

// init records the start state at cost 0 and pushes it.
func (r *runner[S]) init(start S) {
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops entries until a goal is settled or the frontier is empty.
func (r *runner[S]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry[S])

		// Stale: the state was improved after this entry was pushed.
		if item.cost > r.best[item.state] {
			r.res.Stale++
			continue
		}

		r.res.Settled++
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.state, item.cost)
		}

		if r.policy.IsGoal(item.state) {
			r.res.Found = true
			r.res.Cost = item.cost
			r.res.Goal = item.state
			if r.res.Ties != nil {
				r.drain(item.cost)
			}
			return
		}

		r.relax(item.state, item.cost)
	}
}

// relax examines every move out of u, whose cost d is final.
func (r *runner[S]) relax(u S, d int64) {
	r.buf = r.policy.Neighbors(u, r.buf[:0])

	for _, e := range r.buf {
		candidate := d + e.Cost

		// Beyond the cap: never relaxed.
		if candidate > r.options.MaxCost {
			if r.options.OnRelax != nil {
				r.options.OnRelax(u, e.To, candidate, false)
			}
			continue
		}

		old, seen := r.best[e.To]
		improved := !seen || candidate < old
		if r.options.OnRelax != nil {
			r.options.OnRelax(u, e.To, candidate, improved)
		}
		if r.res.Ties != nil {
			switch {
			case improved:
				r.res.Ties[e.To] = []S{u}
			case candidate == old:
				r.res.Ties[e.To] = append(r.res.Ties[e.To], u)
			}
		}
		if !improved {
			continue
		}

		r.best[e.To] = candidate
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, candidate)
	}
}

// drain settles every remaining entry at the goal cost. Goals are collected
// without being expanded; other states are relaxed so that ties through
// zero-cost moves are recorded too.
func (r *runner[S]) drain(cost int64) {
	r.res.Goals = append(r.res.Goals, r.res.Goal)
	for r.pq.Len() > 0 && r.pq[0].cost == cost {
		item := heap.Pop(&r.pq).(entry[S])
		if item.cost > r.best[item.state] {
			r.res.Stale++
			continue
		}

		r.res.Settled++
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.state, item.cost)
		}
		if r.policy.IsGoal(item.state) {
			r.res.Goals = append(r.res.Goals, item.state)
			continue
		}
		r.relax(item.state, item.cost)
	}
}

// push adds (state, cost) to the frontier with the next sequence number.
func (r *runner[S]) push(s S, cost int64) {
	heap.Push(&r.pq, entry[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
	r.res.Pushed++
}

// path walks predecessors back from goal and returns start … goal.
func (r *runner[S]) path(start, goal S) []S {
	out := []S{goal}
	for cur := goal; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
