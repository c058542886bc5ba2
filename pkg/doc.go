// Package pkg provides the core libraries for combikit, a toolkit of
// combinatorial enumerators and small graph utilities.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Algorithms - [combo], [islands] and [chain]. Pure, dependency-free
//     enumerators and graph helpers.
//  2. Orchestration - [pipeline]. Validates requests, applies limits, caches
//     results and reports through [observability] hooks.
//  3. Edges - [io] (JSON import/export and text rows), [render] (DOT, SVG,
//     PDF and PNG), [cache] (file, Redis and null backends) and [errors]
//     (coded errors shared by the CLI and the HTTP API).
//
// # Architecture
//
// The typical data flow through combikit:
//
//	CLI flags / JSON file / HTTP body
//	         ↓
//	    [io] package (decode requests)
//	         ↓
//	    [pipeline] package (validate, cache lookup, compute)
//	         ↓
//	    [combo] / [islands] / [chain] (the algorithms)
//	         ↓
//	    text rows, JSON, DOT, SVG/PDF/PNG
//
// # Quick Start
//
// Enumerate permutations directly:
//
//	perms, _ := combo.Permutations(3, 0)
//	for _, p := range perms {
//	    fmt.Println(p)
//	}
//
// Or through the cached pipeline:
//
//	r := pipeline.NewRunner(nil, nil, nil)
//	res, err := r.Permutations(ctx, pipeline.PermutationsRequest{N: 4, Limit: 10})
//
// Split a graph into connected components:
//
//	parts, _ := islands.Islands(items, links, islands.WithConsolidate(8))
//
// Join segments into chains and loops:
//
//	chains := chain.Merge(segments)
//
// # Main Packages
//
// [combo] - The permutation [combo.Odometer], [combo.Subsets],
// [combo.GroupCombos], constrained permutations and slot distribution.
//
// [islands] - Connected-component decomposition by repeated peeling, with
// optional consolidation of small islands.
//
// [chain] - Merging two-ended segments into open chains and closed loops.
//
// [pipeline] - The [pipeline.Runner] shared by the CLI and the API.
//
// See the individual package documentation for detailed usage.
//
// [combo]: github.com/matzehuels/combikit/pkg/combo
// [islands]: github.com/matzehuels/combikit/pkg/islands
// [chain]: github.com/matzehuels/combikit/pkg/chain
// [pipeline]: github.com/matzehuels/combikit/pkg/pipeline
// [observability]: github.com/matzehuels/combikit/pkg/observability
// [io]: github.com/matzehuels/combikit/pkg/io
// [render]: github.com/matzehuels/combikit/pkg/render
// [cache]: github.com/matzehuels/combikit/pkg/cache
// [errors]: github.com/matzehuels/combikit/pkg/errors
// [combo.Odometer]: github.com/matzehuels/combikit/pkg/combo#Odometer
// [combo.Subsets]: github.com/matzehuels/combikit/pkg/combo#Subsets
// [combo.GroupCombos]: github.com/matzehuels/combikit/pkg/combo#GroupCombos
// [pipeline.Runner]: github.com/matzehuels/combikit/pkg/pipeline#Runner
package pkg
