// Package bfs walks a grid.Grid breadth-first over orthogonal moves and
// reports step counts, parent links and visit order.
//
// Unit-cost grids do not need a priority queue: the level at which a cell is
// first reached is its exact distance. That makes BFS the reference the
// weighted engine in package search is checked against, and the cheap
// reachability test behind policy.Memory.FirstBlocking.
//
// The walk is level-synchronous over flat row-major slices. The context is
// checked once per level; a cancelled walk returns what it reached so far.
// Neighbors are taken clockwise from north, so Order is reproducible.
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithWalls(g, '#'),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds or ctx.Err()
//	}
//	steps, ok := res.Depth(goal)
//
// Time and memory are O(Rows × Cols).
package bfs
