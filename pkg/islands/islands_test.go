package islands

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sampleGraph() ([]string, []Link[string]) {
	items := []string{"A", "B", "C", "D", "E"}
	links := []Link[string]{
		{A: 0, B: 1, Payload: "A-B"},
		{A: 1, B: 4, Payload: "B-E"},
		{A: 2, B: 3, Payload: "C-D"},
	}
	return items, links
}

func TestIslandsTwoComponents(t *testing.T) {
	items, links := sampleGraph()
	got, err := Islands(items, links)
	if err != nil {
		t.Fatal(err)
	}

	want := []Island[string, string]{
		{
			Indices: []int{0, 1, 4},
			Items:   []string{"A", "B", "E"},
			Links:   []Link[string]{{A: 0, B: 1, Payload: "A-B"}, {A: 1, B: 4, Payload: "B-E"}},
		},
		{
			Indices: []int{2, 3},
			Items:   []string{"C", "D"},
			Links:   []Link[string]{{A: 2, B: 3, Payload: "C-D"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Islands mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeIsPartition(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	links := []Link[struct{}]{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 0},
		{A: 3, B: 4},
		{A: 6, B: 6},
	}
	got, err := Islands(items, links)
	if err != nil {
		t.Fatal(err)
	}

	itemSeen := map[int]int{}
	linkCount := 0
	for _, is := range got {
		for _, idx := range is.Indices {
			itemSeen[idx]++
		}
		linkCount += len(is.Links)
	}
	for i := range items {
		if itemSeen[i] != 1 {
			t.Errorf("item %d appears in %d islands, want 1", i, itemSeen[i])
		}
	}
	if linkCount != len(links) {
		t.Errorf("islands hold %d links, want %d", linkCount, len(links))
	}
}

func TestDecomposeUnlinkedFirst(t *testing.T) {
	items := []string{"x", "y", "z"}
	links := []Link[int]{{A: 0, B: 2}}
	got, err := Islands(items, links)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d islands, want 2", len(got))
	}
	if diff := cmp.Diff([]int{1}, got[0].Indices); diff != "" {
		t.Errorf("first island should be the unlinked item (-want +got):\n%s", diff)
	}
	if len(got[0].Links) != 0 {
		t.Errorf("unlinked island has %d links", len(got[0].Links))
	}
}

func TestDecomposeSingleItem(t *testing.T) {
	got, err := Islands[string, struct{}]([]string{"only"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []Island[string, struct{}]{{Indices: []int{0}, Items: []string{"only"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeFixedPoint(t *testing.T) {
	items, links := sampleGraph()
	items = append(items, "F")
	parts, err := Islands(items, links)
	if err != nil {
		t.Fatal(err)
	}

	for _, is := range parts {
		localItems, localLinks := is.Reindex()
		again, err := Islands(localItems, localLinks)
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != 1 {
			t.Fatalf("island %v split into %d parts", is.Items, len(again))
		}
		if diff := cmp.Diff(localItems, again[0].Items); diff != "" {
			t.Errorf("items changed (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(localLinks, again[0].Links, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("links changed (-want +got):\n%s", diff)
		}
	}
}

func TestConsolidate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	links := []Link[struct{}]{
		{A: 0, B: 1},
		{A: 2, B: 3}, {A: 3, B: 4},
		{A: 5, B: 6}, {A: 6, B: 7}, {A: 7, B: 5}, {A: 7, B: 8},
	}
	got, err := Islands(items, links, WithConsolidate(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d islands, want 2", len(got))
	}
	if diff := cmp.Diff([]int{5, 6, 7, 8}, got[0].Indices); diff != "" {
		t.Errorf("large island should be untouched (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got[1].Indices); diff != "" {
		t.Errorf("merged island mismatch (-want +got):\n%s", diff)
	}
	if len(got[1].Links) != 3 {
		t.Errorf("merged island has %d links, want 3", len(got[1].Links))
	}
}

func TestConsolidateKeepsSingles(t *testing.T) {
	in := []Island[string, int]{
		{Indices: []int{0}, Items: []string{"a"}},
		{Indices: []int{1, 2}, Items: []string{"b", "c"}, Links: []Link[int]{{A: 1, B: 2}}},
	}
	got := Consolidate(in, 5)
	if len(got) != 2 {
		t.Fatalf("got %d islands, want 2", len(got))
	}
	if diff := cmp.Diff(in[0], got[0]); diff != "" {
		t.Errorf("single-item island changed (-want +got):\n%s", diff)
	}
}

func TestConsolidateDisabled(t *testing.T) {
	items, links := sampleGraph()
	got, err := Islands(items, links, WithConsolidate(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d islands, want 2", len(got))
	}
}

func TestWrapOutOfRange(t *testing.T) {
	_, err := Wrap([]int{1, 2}, []Link[int]{{A: 0, B: 2}})
	if !errors.Is(err, ErrLinkOutOfRange) {
		t.Errorf("Wrap error = %v, want ErrLinkOutOfRange", err)
	}
}

func TestWrapSymmetric(t *testing.T) {
	items, links := sampleGraph()
	g, err := Wrap(items, links)
	if err != nil {
		t.Fatal(err)
	}
	for n, node := range g.Nodes {
		for _, ei := range node.Edges {
			e := g.Edges[ei]
			if e.From != n && e.To != n {
				t.Errorf("node %d lists edge %d that does not touch it", n, ei)
			}
		}
	}
	for ei, e := range g.Edges {
		if !slices.Contains(g.Nodes[e.From].Edges, ei) || !slices.Contains(g.Nodes[e.To].Edges, ei) {
			t.Errorf("edge %d missing from an endpoint", ei)
		}
	}
	if g.Degree(1) != 2 {
		t.Errorf("Degree(B) = %d, want 2", g.Degree(1))
	}
}

