// Package costgrid holds the immutable rectangular cost map that the
// momentum-constrained router walks over.
//
// What:
//
//   - Grid wraps a rectangular [][]C of non-negative integer costs, C being any
//     Go integer type (uint8 for puzzle digits, int64 for weighted terrain).
//   - Coordinate is a (Row, Col) pair; Row grows southwards, Col eastwards.
//   - Parse reads the canonical digit format: one row per line, one digit per cell.
//
// Why:
//
//   - Validation happens once, at construction. After that every lookup is a
//     bounds check plus an index, and the grid can be shared by pointer.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory (deep copy).
//   - Cost, InBounds, IsEnd: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: no rows, no columns, ragged rows, negative or
//     unparsable cells.
//   - ErrOutOfBounds: a lookup outside the grid.
package costgrid
