package islands

import (
	"errors"
	"fmt"
)

// ErrLinkOutOfRange is returned by [Wrap] when a link names an item index
// that does not exist.
var ErrLinkOutOfRange = errors.New("link endpoint out of range")

// Link is an undirected connection between two items, addressed by their
// index in the item slice, with an optional caller payload.
type Link[L any] struct {
	A       int `json:"a"`
	B       int `json:"b"`
	Payload L   `json:"payload,omitempty"`
}

// Node wraps a caller item with its original index and the indices of the
// edges that touch it.
type Node[T any] struct {
	Item  T
	Index int
	Edges []int
}

// Edge is the arena form of a [Link]: From and To are node indices.
type Edge[L any] struct {
	Payload L
	From    int
	To      int
}

// Other returns the endpoint of e that is not n. For a self link it
// returns n.
func (e Edge[L]) Other(n int) int {
	if e.From == n {
		return e.To
	}
	return e.From
}

// Graph holds items and links as two arenas that refer to each other by
// index. Every edge index in a node's Edges names an edge whose From or To
// is that node, and every edge appears in the Edges of both endpoints.
//
// Graph never mutates the caller's items.
type Graph[T, L any] struct {
	Nodes []Node[T]
	Edges []Edge[L]
}

// Wrap builds a [Graph] from raw items and (indexA, indexB, payload) links.
func Wrap[T, L any](items []T, links []Link[L]) (*Graph[T, L], error) {
	g := &Graph[T, L]{
		Nodes: make([]Node[T], len(items)),
		Edges: make([]Edge[L], len(links)),
	}
	for i, it := range items {
		g.Nodes[i] = Node[T]{Item: it, Index: i}
	}
	for i, l := range links {
		if l.A < 0 || l.A >= len(items) || l.B < 0 || l.B >= len(items) {
			return nil, fmt.Errorf("link %d (%d-%d) with %d items: %w", i, l.A, l.B, len(items), ErrLinkOutOfRange)
		}
		g.Edges[i] = Edge[L]{Payload: l.Payload, From: l.A, To: l.B}
		g.Nodes[l.A].Edges = append(g.Nodes[l.A].Edges, i)
		if l.B != l.A {
			g.Nodes[l.B].Edges = append(g.Nodes[l.B].Edges, i)
		}
	}
	return g, nil
}

// Degree returns the number of edges touching node n.
func (g *Graph[T, L]) Degree(n int) int { return len(g.Nodes[n].Edges) }
