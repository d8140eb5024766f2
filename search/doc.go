// Package search provides a generic, constrained-state shortest-path engine:
// Dijkstra's algorithm over an implicit, lazily expanded state graph.
//
// Overview:
//
//   - A state is any comparable Go value. Grid searches typically use a position
//     plus some context (facing direction, run length, time index) so that two
//     visits of the same cell with different context are different states.
//   - The caller supplies a Policy: Neighbors appends every legal single move out
//     of a state together with its non-negative cost, and IsGoal reports whether a
//     state ends the search.
//   - States are never enumerated up front. Neighbors is called on demand, once per
//     settled state, so the graph may be arbitrarily large as long as the reachable
//     part is finite.
//
// When to use:
//
//   - Grid mazes where turning costs extra (reindeer maze, orthogonal routing).
//   - Movement rules that depend on history (at most N straight steps, at least M
//     before a turn).
//   - Time-dependent obstacles, by folding a bounded tick into the state.
//   - Plain weighted grids: the state is just the coordinate.
//
// Key features:
//
//   - Search returns (cost, ok). ok == false means the goal is unreachable; a zero
//     cost is only ever a real zero-length path.
//   - Run returns a Result with the goal state, optional path, the final best-cost
//     map and counters (settled, pushed, stale).
//   - Distances explores everything reachable and returns the best-cost map.
//   - Functional options: WithReturnPath, WithAllPredecessors, WithMaxCost,
//     WithCapacity and the WithOnRelax / WithOnSettle hooks.
//   - With WithAllPredecessors, Result.Cheapest returns every state on some
//     minimum-cost path, e.g. to count the cells shared by all best routes.
//
// Algorithm:
//
//  1. Push (0, start). If IsGoal(start), return 0 without expanding anything.
//  2. Pop the cheapest entry. If its cost is above the recorded best for that
//     state, it is stale: drop it.
//  3. If IsGoal(state), return its cost. Non-negative edges make it optimal.
//  4. Otherwise relax each neighbor: candidate = cost + edge cost; if the state has
//     no recorded cost or candidate is strictly lower, record and push it.
//  5. When the frontier is empty, the goal is unreachable.
//
// Stale entries replace decrease-key: the heap may hold several entries for one
// state, and only the one matching the best-cost map is ever expanded.
//
// Complexity (V = reachable states, E = examined transitions):
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) for the best-cost map and the heap.
//
// Contract:
//
//   - Edge costs must be non-negative. The engine does not check this; a negative
//     cost silently breaks optimality.
//   - Neighbors must be deterministic and return only legal moves (bounds, walls
//     and context rules already applied).
//   - The caller keeps the state space finite. There is no iteration cap.
//
// Concurrency:
//
//   - A call is synchronous and owns its maps and heap. Independent calls may run
//     in parallel as long as the policies they share are read-only.
//
// Example:
//
//	cost, ok := search.SearchFunc(start,
//	    func(p grid.Point) bool { return p == goal },
//	    func(p grid.Point, buf []search.Edge[grid.Point]) []search.Edge[grid.Point] {
//	        for _, q := range g.Neighbors4(p) {
//	            buf = append(buf, search.Edge[grid.Point]{To: q, Cost: int64(g.At(q))})
//	        }
//	        return buf
//	    })
package search
