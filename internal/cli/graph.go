package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/combikit/pkg/chain"
	pkgio "github.com/matzehuels/combikit/pkg/io"
	"github.com/matzehuels/combikit/pkg/render"
)

// islandsCommand creates the islands command.
func (c *CLI) islandsCommand() *cobra.Command {
	var (
		consolidate int
		out         outputFlags
	)

	cmd := &cobra.Command{
		Use:   "islands FILE",
		Short: "Split a node/edge document into connected components",
		Long: `Split a node/edge JSON document into independent islands.

Nodes without edges come first, one island each. The remaining islands are
found breadth-first from the lowest unvisited node. With --consolidate N,
all islands with 2..N nodes are merged into one island at the end.

Use "-" to read the document from stdin.`,
		Example: `  combikit islands graph.json
  combikit islands graph.json --consolidate 3 -f svg -o islands.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			req, err := pkgio.Import(args[0], pkgio.ReadGraph)
			if err != nil {
				return err
			}
			req.Consolidate = c.Config.Islands.Consolidate
			if cmd.Flags().Changed("consolidate") {
				req.Consolidate = consolidate
			}

			ctx := cmd.Context()
			watch := startStopwatch(loggerFromContext(ctx))
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Islands(ctx, req)
			if err != nil {
				return err
			}
			parts := res.Value
			err = out.write(ctx, result{
				value: parts,
				text:  func(w io.Writer) error { return pkgio.WriteIslands(parts, w) },
				dot:   func(o render.Options) string { return render.IslandsDOT(parts, o) },
			})
			if err != nil {
				return err
			}
			out.report(ctx, "islands", len(parts), res.CacheHit, res.Duration)
			watch.done("Decomposed %s into %s", pluralize(len(req.Items), "item"), pluralize(len(parts), "island"))
			return nil
		},
	}

	cmd.Flags().IntVar(&consolidate, "consolidate", 0, "merge islands with 2..N items into one (default from config)")
	out.register(cmd, graphFormats)
	return cmd
}

// chainsCommand creates the chains command.
func (c *CLI) chainsCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "chains FILE",
		Short: "Merge segments that share endpoints into chains and loops",
		Long: `Merge two-point segments that share endpoints into maximal chains.

A chain whose ends meet is reported as a loop, listing each vertex once.
Where three or more segments meet at a vertex the merge order is
unspecified.

Use "-" to read the document from stdin.`,
		Example: `  combikit chains segments.json
  combikit chains segments.json -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			req, err := pkgio.Import(args[0], pkgio.ReadSegments)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Chains(ctx, req)
			if err != nil {
				return err
			}
			chains := res.Value
			err = out.write(ctx, result{
				value: chains,
				text:  func(w io.Writer) error { return pkgio.WriteChains(chains, w) },
				dot:   func(o render.Options) string { return render.ChainsDOT(chains, o) },
			})
			if err != nil {
				return err
			}
			out.report(ctx, "chains", len(chains), res.CacheHit, res.Duration)
			if n := loops(chains); n > 0 {
				loggerFromContext(ctx).Debug("found loops", "count", n)
			}
			return nil
		},
	}

	out.register(cmd, graphFormats)
	return cmd
}

func loops[T any](chains []chain.Chain[T]) int {
	n := 0
	for _, c := range chains {
		if c.IsLoop {
			n++
		}
	}
	return n
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
