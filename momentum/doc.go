// Package momentum models the search state of a crucible moving across a
// costgrid.Grid and the rules that constrain its next move.
//
// A State is a position, the heading of the last move, and how many moves in a
// row were made along that heading. Successors enumerates every legal next
// State together with the cost of the cell it enters:
//
//   - reversing (North after South, ...) is never legal;
//   - turning resets Run to 1 and needs Run >= Rules.MinRun;
//   - going straight increments Run and needs Run < Rules.MaxRun;
//   - moves that would leave the grid are dropped, there is no wraparound.
//
// The start of a route is the origin pseudo-state: heading NoDirection, Run 0.
// NoDirection is not one of the four Directions, so the origin may leave in any
// direction and no run restriction applies to the first move.
//
// With the default Rules (MaxRun 3, MinRun 0) this is the classic crucible;
// MaxRun 10, MinRun 4 gives the ultra crucible.
package momentum
