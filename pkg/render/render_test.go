package render

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/combikit/pkg/chain"
	"github.com/matzehuels/combikit/pkg/islands"
)

func TestIslandsDOT(t *testing.T) {
	parts, err := islands.Islands(
		[]string{"A", "B", "C"},
		[]islands.Link[string]{{A: 0, B: 2, Payload: "w"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	dot := IslandsDOT(parts, Options{})
	for _, want := range []string{
		"graph G {",
		"subgraph cluster_0 {",
		"subgraph cluster_1 {",
		`n1 [label="B"];`,
		"n0 -- n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `label="w"`) {
		t.Error("payload label should only appear in detailed mode")
	}

	detailed := IslandsDOT(parts, Options{Detailed: true})
	if !strings.Contains(detailed, `n0 -- n2 [label="w"];`) {
		t.Errorf("detailed DOT missing payload label:\n%s", detailed)
	}
	if !strings.Contains(detailed, `label="2: C"`) {
		t.Errorf("detailed DOT missing indexed label:\n%s", detailed)
	}
}

func TestChainsDOT(t *testing.T) {
	chains := chain.Merge([]chain.Segment[int]{{0, 1}, {1, 2}, {2, 0}, {5, 6}})
	dot := ChainsDOT(chains, Options{})

	if !strings.Contains(dot, `"0" -- "1" -- "2" -- "0" [penwidth=2];`) {
		t.Errorf("loop not closed:\n%s", dot)
	}
	if !strings.Contains(dot, `"5" -- "6";`) {
		t.Errorf("open chain missing:\n%s", dot)
	}
	if strings.Count(dot, `  "0";`) != 1 {
		t.Errorf("vertex 0 should be declared once:\n%s", dot)
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "points become pixels",
			in:   `<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "empty extent",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(pixelSize([]byte(tt.in))); got != tt.want {
				t.Errorf("pixelSize() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	got, err := Convert(ctx, "graph G {}", "dot")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "graph G {}" {
		t.Errorf("Convert(dot) = %q", got)
	}

	if _, err := Convert(ctx, "graph G {}", "gif"); err == nil {
		t.Error("Convert should reject unknown formats")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
		{"bell\x07", "\"bell\x07\""},
		{"no\u00a0break", "\"no\u00a0break\""},
		{"two\nlines", "\"two\nlines\""},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestChainsDOTEscapesVertices(t *testing.T) {
	chains := chain.Merge([]chain.Segment[string]{{`x"y`, "z\u00a0"}})
	dot := ChainsDOT(chains, Options{})
	if !strings.Contains(dot, "\"x\\\"y\" -- \"z\u00a0\"") {
		t.Errorf("edge not escaped for DOT:\n%s", dot)
	}
	if strings.Contains(dot, `\u00a0`) {
		t.Errorf("Go escape leaked into DOT:\n%s", dot)
	}
}
