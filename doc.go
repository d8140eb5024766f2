// Package gridpath finds cheapest routes across grids where the cost of a
// move depends on more than the cell you stand on: the way you face, how
// long you have gone straight, or what minute it is.
//
// What is gridpath?
//
//	A small set of packages built around one generic Dijkstra engine:
//		• search   : lazy-deletion Dijkstra over any comparable state type
//		• grid     : rectangular int grids, points, directions, parsers
//		• policy   : ready-made movement rules (weighted, uniform, climb,
//		              reindeer, crucible, blizzard, memory)
//		• bfs      : unit-cost reference walker and reachability test
//
// Why a state type?
//
//   - A plain cell is enough when cost depends only on the cell entered.
//   - Turning penalties need the heading in the state.
//   - Run-length limits need the heading and the current straight run.
//   - Moving obstacles need the time, kept modulo their period.
//
// The engine never looks inside the state; a Policy says where a state can
// go, what each move costs and which states are goals.
//
// Layout:
//
//	search/             engine, options, counters
//	grid/               Grid, Point, Direction, ParseDigits/ParseChars/ParsePoints
//	policy/             movement policies and their input parsers
//	bfs/                breadth-first search over a grid
//	internal/config     HCL and YAML run files
//	internal/runner     policy registry, parallel solves
//	internal/render     path overlay for terminals
//	internal/telemetry, internal/ctxlog   OpenTelemetry and slog plumbing
//	cmd/gridpath        the CLI
//
// Quick ASCII example:
//
//	1 1 1
//	9 9 1      (0,0) → (2,2) along the top and right edges costs 4
//	1 1 1
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
