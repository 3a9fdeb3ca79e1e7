// Package heatpath routes a crucible across a grid of heat-loss blocks.
//
// 🚀 What is heatpath?
//
//	A small, dependency-light library for one question: what is the cheapest
//	way from one corner of a cost grid to the other when the mover may not
//	reverse and may only go so far in a straight line?
//
// Under the hood, everything is organized in four subpackages:
//
//	costgrid/  — the immutable cost grid, coordinates and the digit parser
//	momentum/  — directions, search states, run rules and the transition function
//	frontier/  — per-cell sets of non-dominated (state, cost) entries
//	wavefront/ — the layer-by-layer propagation engine and its options
//
// Quick example:
//
//	g, _ := costgrid.ParseString("111\n991\n")
//	res, _ := wavefront.Route(g, wavefront.WithMaxRun(3))
//	fmt.Println(res.Cost) // 3
//
// cmd/heatloss wraps the same calls for grid files on disk.
package heatpath
