// Package policy ships the grid search policies used with package search.
//
// A policy owns every puzzle rule: which moves are legal from a state, what
// each move costs and when the walk is over. The engine in package search only
// sees the search.Policy contract, so direction, run length or time never leak
// into it.
//
// Policies
//
//	Policy    State      Move                                    Cost
//	Weighted  Point      4-ways, Passable cells                  entered cell value
//	Uniform   Point      4-ways, not Wall                        1
//	Climb     Point      rise ≤ MaxRise (Reverse: drop ≤ MaxRise) 1
//	Reindeer  Heading    forward, or rotate in place             1 / TurnCost
//	Crucible  Momentum   no reversal, MinRun ≤ turn, run ≤ MaxRun entered cell value
//	Blizzard  Moment     4-ways or wait, blizzard free next tick 1
//
// Every policy is an immutable value that also implements Located, so callers
// can build a start state from a cell and project any state back onto the grid.
// Policies hold no mutable state and may be shared by concurrent searches.
//
// Parsers
//
//   - ParseHeightmap  letter elevations with S and E (Climb).
//   - ParseMaze       '#' walls with S and E (Reindeer, Uniform).
//   - ParseValley     blizzard basin with entry and exit gaps (Blizzard).
//   - ParseMemory     falling "x,y" bytes on a square space (Uniform).
//
// Finite state spaces
//
// The engine has no iteration cap. Crucible bounds Run by MaxRun and Blizzard
// wraps Tick at the valley period, so both searches always terminate.
package policy
