// Package grid loads puzzle text into an immutable 2-D grid of integer cells
// and provides the coordinate vocabulary shared by the search policies.
//
// What:
//
//   - Grid wraps a rectangular [][]int, deep-copied on construction.
//   - Point is a (Row, Col) value type; Direction is a compass heading with
//     Left/Right/Reverse and a unit Delta.
//   - Parsers: ParseDigits (one digit per cell), ParseChars (rune code per cell),
//     ParsePoints ("x,y" per line).
//   - Tile builds the n×n enlarged map where each tile adds its tile distance
//     and values wrap back to 1.
//
// Why:
//
//   - Policies need cheap bounds checks and neighbor offsets, nothing more.
//   - Keeping the grid immutable lets many searches share one instance.
//
// Complexity:
//
//   - New / Parse*: O(W×H) time and memory.
//   - At, InBounds, Index, Coordinate: O(1).
//   - Find: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a character is not valid for the parser.
//   - ErrBadPoint: a coordinate line is malformed.
package grid
