package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/combikit/pkg/chain"
	"github.com/matzehuels/combikit/pkg/islands"
)

// Options configures diagram generation.
type Options struct {
	// Detailed prefixes item labels with their input index and labels
	// links with their payload.
	Detailed bool
}

// dotEscaper escapes the only two characters special inside a DOT quoted
// string.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote returns s as a DOT quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func header(buf *bytes.Buffer) {
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")
}

// IslandsDOT converts islands to an undirected Graphviz graph with one
// cluster per island. Node ids are the items' input indices, so links keep
// pointing at the right nodes after consolidation.
func IslandsDOT[T, L any](parts []islands.Island[T, L], opts Options) string {
	var buf bytes.Buffer
	header(&buf)

	for i, is := range parts {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%s;\n", quote(fmt.Sprintf("island %d", i)))
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for j, idx := range is.Indices {
			label := fmt.Sprint(is.Items[j])
			if opts.Detailed {
				label = fmt.Sprintf("%d: %s", idx, label)
			}
			fmt.Fprintf(&buf, "    n%d [label=%s];\n", idx, quote(label))
		}
		for _, l := range is.Links {
			attrs := ""
			if opts.Detailed {
				if p := fmt.Sprint(l.Payload); p != "" && p != "<nil>" {
					attrs = " [label=" + quote(p) + "]"
				}
			}
			fmt.Fprintf(&buf, "    n%d -- n%d%s;\n", l.A, l.B, attrs)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ChainsDOT converts chains to an undirected Graphviz graph. Vertices are
// identified by their printed value, so chains that share a vertex share a
// node. Loop edges are drawn bold.
func ChainsDOT[T any](chains []chain.Chain[T], opts Options) string {
	var buf bytes.Buffer
	header(&buf)

	declared := map[string]bool{}
	for _, c := range chains {
		for _, v := range c.Values {
			id := fmt.Sprint(v)
			if declared[id] {
				continue
			}
			declared[id] = true
			fmt.Fprintf(&buf, "  %s;\n", quote(id))
		}
	}

	buf.WriteString("\n")
	for i, c := range chains {
		ids := make([]string, len(c.Values))
		for j, v := range c.Values {
			ids[j] = quote(fmt.Sprint(v))
		}
		if c.IsLoop && len(ids) > 1 {
			ids = append(ids, ids[0])
		}
		var attrs []string
		if c.IsLoop {
			attrs = append(attrs, "penwidth=2")
		}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=\"#%d\"", i))
		}
		suffix := ""
		if len(attrs) > 0 {
			suffix = " [" + strings.Join(attrs, ", ") + "]"
		}
		fmt.Fprintf(&buf, "  %s%s;\n", strings.Join(ids, " -- "), suffix)
	}

	buf.WriteString("}\n")
	return buf.String()
}
