// Package render draws islands and chains as Graphviz diagrams.
//
// # Overview
//
// [IslandsDOT] and [ChainsDOT] produce Graphviz DOT source. Islands become
// one cluster per island with an undirected edge per link; chains become
// paths, with loops closed back to their first vertex.
//
//	dot := render.IslandsDOT(parts, render.Options{})
//	svg, err := render.Convert(ctx, dot, "svg")
//
// # Output Formats
//
// [SVG] runs Graphviz in-process through go-graphviz. PDF and PNG output
// pipe that SVG through the external rsvg-convert tool (from librsvg), so
// [Convert] returns [ErrRsvgMissing] where it is not installed.
package render
