// Package wavefront finds the cheapest momentum-constrained route across a
// costgrid.Grid by layer-by-layer relaxation of a frontier.Store.
//
// Overview:
//
//   - The crucible starts at the start cell in the origin pseudo-state with
//     cumulative cost 0. The start cell's own cost is never paid.
//   - Every pass expands each state of the current work-list through
//     momentum.Successors, adds the entered cell's cost, and offers the result
//     to the frontier. Admitted states form the next work-list.
//   - The search stops when a pass admits nothing. The answer is the cheapest
//     stoppable entry at the end cell.
//
// This is deliberately not Dijkstra: passes are unordered and correctness rests
// on the dominance rule alone. Costs are non-negative, so a state that is
// dominated stays dominated after any sequence of further moves, and the
// fixed point holds the optimum.
//
// Engine lifecycle:
//
//	Idle ──Run──▶ Expanding ──(empty work-list)──▶ Done
//
// Run may be called again; each call starts from a fresh frontier.
//
// Options:
//
//   - WithMaxRun / WithMinRun / WithRules: the momentum rules (default 3 / 0).
//   - WithStart / WithEnd: override the corner cells.
//   - WithMaxPasses: bound the number of passes; running out reports no path.
//   - WithContext: cancellation, checked once per pass and per work item.
//   - WithLogger, WithOnPass, WithOnAdmit: observation hooks.
//
// Errors:
//
//   - ErrNilGrid:          nil grid passed to New.
//   - ErrOptionViolation:  invalid option value (wraps momentum.ErrBadMaxRun etc.).
//   - costgrid.ErrOutOfBounds: start or end outside the grid.
//   - ErrNoPath:           returned by Result.Err only; "no route" is a normal
//     Result with Found == false, not a Run error.
//   - ErrCostOverflow:     every route reaching the end costs more than a uint64.
//
// Complexity:
//
//   - Live states are bounded by W×H×4×MaxRun. Each pass touches each work
//     item once with at most 3 successors and an O(4×MaxRun) dominance scan.
//     Without priority ordering a cell may be improved over several passes,
//     so the pass count is bounded by the number of distinct improvements,
//     not by the route length.
//   - Memory: O(W×H×4×MaxRun).
package wavefront
