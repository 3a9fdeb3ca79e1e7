// Package frontier keeps, for every grid cell, the set of reached search
// states that are not dominated by one another.
//
// Entry a dominates entry b at the same cell when a is no more expensive,
// moves along the same heading, and has used up no more of its straight run:
//
//	a.Cost <= b.Cost && a.Dir == b.Dir && a.Run <= b.Run
//
// Such an a can do everything b can, at no higher cost. Entries with different
// headings are incomparable and always coexist.
//
// Under a minimum run the shorter run is only better once it may turn:
// a additionally needs a.Run == b.Run or a.Run >= minRun (DominatesWithin).
// With minRun 0 the two rules coincide.
//
// TryAdmit refuses a dominated candidate and, when it accepts one, evicts every
// stored entry the candidate dominates. The live set at a cell therefore stays
// an antichain of at most 4×MaxRun entries (plus the origin at the start cell).
//
// A Store belongs to a single query and is not safe for concurrent use.
package frontier
