// Package islands splits a set of linked items into independent connected
// components ("islands").
//
// # Overview
//
// Callers supply plain items and index-based links. [Wrap] turns them into a
// [Graph] whose nodes and edges refer to each other by index, so the graph
// has no pointer cycles and never touches the caller's items. [Decompose]
// then walks the graph breadth-first and returns one [Island] per component:
//
//	items := []string{"A", "B", "C", "D", "E"}
//	links := []islands.Link[string]{
//	    {A: 0, B: 1, Payload: "A-B"},
//	    {A: 1, B: 4, Payload: "B-E"},
//	    {A: 2, B: 3, Payload: "C-D"},
//	}
//	parts, _ := islands.Islands(items, links)
//	// parts[0]: A B E with A-B, B-E
//	// parts[1]: C D with C-D
//
// The result is a partition: every item and every link lands in exactly one
// island. Running [Decompose] again on a single island (see
// [Island.Reindex]) returns it unchanged.
//
// # Consolidation
//
// Callers that do not care about many small islands individually can fold
// them together with [Consolidate] (or [WithConsolidate]): all islands with
// 2..max items are replaced by one merged island. Single items and large
// islands are left alone.
package islands
