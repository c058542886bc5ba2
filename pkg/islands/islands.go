package islands

import (
	"slices"
)

// Island is one connected component. Indices are the items' positions in
// the input slice, sorted ascending; Items is parallel to Indices. Links
// keep their original (input) endpoint indices and appear in input order.
type Island[T, L any] struct {
	Indices []int     `json:"indices"`
	Items   []T       `json:"items"`
	Links   []Link[L] `json:"links"`
}

// Len returns the number of items in the island.
func (is Island[T, L]) Len() int { return len(is.Indices) }

// Reindex returns the island's items and its links renumbered against the
// returned item slice, ready to be wrapped and decomposed on their own.
func (is Island[T, L]) Reindex() ([]T, []Link[L]) {
	local := make(map[int]int, len(is.Indices))
	for i, idx := range is.Indices {
		local[idx] = i
	}
	links := make([]Link[L], len(is.Links))
	for i, l := range is.Links {
		links[i] = Link[L]{A: local[l.A], B: local[l.B], Payload: l.Payload}
	}
	return slices.Clone(is.Items), links
}

// Decompose splits g into independent connected components.
//
// Items without links come first, each as its own single-item island, in
// index order. The remaining items are expanded breadth-first from the
// lowest index not yet visited; visited items and consumed edges drop out of
// the pool, so every item and every edge lands in exactly one island.
func Decompose[T, L any](g *Graph[T, L]) []Island[T, L] {
	var out []Island[T, L]
	for i, n := range g.Nodes {
		if len(n.Edges) == 0 {
			out = append(out, Island[T, L]{
				Indices: []int{i},
				Items:   []T{n.Item},
			})
		}
	}

	seen := make([]bool, len(g.Nodes))
	used := make([]bool, len(g.Edges))
	for seed, n := range g.Nodes {
		if seen[seed] || len(n.Edges) == 0 {
			continue
		}

		seen[seed] = true
		queue := []int{seed}
		var edges []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, ei := range g.Nodes[u].Edges {
				if used[ei] {
					continue
				}
				used[ei] = true
				edges = append(edges, ei)
				if v := g.Edges[ei].Other(u); !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		out = append(out, build(g, queue, edges))
	}
	return out
}

func build[T, L any](g *Graph[T, L], nodes, edges []int) Island[T, L] {
	slices.Sort(nodes)
	slices.Sort(edges)
	is := Island[T, L]{
		Indices: nodes,
		Items:   make([]T, len(nodes)),
		Links:   make([]Link[L], len(edges)),
	}
	for i, n := range nodes {
		is.Items[i] = g.Nodes[n].Item
	}
	for i, ei := range edges {
		e := g.Edges[ei]
		is.Links[i] = Link[L]{A: e.From, B: e.To, Payload: e.Payload}
	}
	return is
}

// Consolidate merges every island whose item count is in (1, maxItems] into
// one replacement island appended after the untouched ones. Single-item
// islands and islands larger than maxItems keep their place. The input slice
// is not modified.
func Consolidate[T, L any](islands []Island[T, L], maxItems int) []Island[T, L] {
	out := make([]Island[T, L], 0, len(islands))
	var small []Island[T, L]
	for _, is := range islands {
		if n := is.Len(); n > 1 && n <= maxItems {
			small = append(small, is)
			continue
		}
		out = append(out, is)
	}
	if len(small) == 0 {
		return out
	}
	return append(out, merge(small))
}

// merge unions islands taken from the same graph. Items are re-sorted by
// original index and links by their first appearance.
func merge[T, L any](islands []Island[T, L]) Island[T, L] {
	type entry struct {
		idx  int
		item T
	}
	var entries []entry
	var links []Link[L]
	for _, is := range islands {
		for i, idx := range is.Indices {
			entries = append(entries, entry{idx, is.Items[i]})
		}
		links = append(links, is.Links...)
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return a.idx - b.idx })

	out := Island[T, L]{
		Indices: make([]int, len(entries)),
		Items:   make([]T, len(entries)),
		Links:   links,
	}
	for i, e := range entries {
		out.Indices[i] = e.idx
		out.Items[i] = e.item
	}
	return out
}

// Option configures [Islands].
type Option func(*options)

type options struct {
	consolidate int
}

// WithConsolidate merges islands with 2..maxItems items into one, see
// [Consolidate]. A value below 2 disables consolidation.
func WithConsolidate(maxItems int) Option {
	return func(o *options) { o.consolidate = maxItems }
}

// Islands wraps items and links and decomposes them in one call.
func Islands[T, L any](items []T, links []Link[L], opts ...Option) ([]Island[T, L], error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	g, err := Wrap(items, links)
	if err != nil {
		return nil, err
	}
	out := Decompose(g)
	if o.consolidate > 1 {
		out = Consolidate(out, o.consolidate)
	}
	return out, nil
}
