// Package chain reconstructs polylines and loops from unordered two-point
// segments.
//
// Segments are undirected: (a, b) and (b, a) describe the same piece. [Merge]
// keeps joining chains that share an endpoint until no more joins are
// possible. A chain whose ends meet is reported as a loop with the repeated
// end dropped:
//
//	chains := chain.Merge([]chain.Segment[int]{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	// chains[0].Values = [0 1 2 3], chains[0].IsLoop = true
//
// Use [MergeFunc] when values are not comparable with == or need a custom
// equality, such as points compared within a tolerance.
//
// # Limitations
//
// Merging assumes each endpoint is shared by at most two segments. Junctions
// where three or more segments meet are joined arbitrarily; callers that need
// such graphs should split them first, for example with package islands.
package chain
