package cli

import (
	"io"

	"github.com/spf13/cobra"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
	pkgio "github.com/matzehuels/combikit/pkg/io"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// permsCommand creates the perms command.
func (c *CLI) permsCommand() *cobra.Command {
	var (
		limit    int
		together string
		out      outputFlags
	)

	cmd := &cobra.Command{
		Use:   "perms N",
		Short: "List the permutations of 0..N-1 in lexicographic order",
		Long: `List the permutations of 0..N-1, driven by an odometer of N columns.

Each line is one assignment, column by column. With --together, only
orderings that keep every listed set in consecutive positions are shown.
Results are cached, so asking again with the same flags returns immediately.`,
		Example: `  combikit perms 3
  combikit perms 8 --limit 10
  combikit perms 5 --together "0,1;3,4"
  combikit perms 6 -f json -o perms.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			n, err := parseSize("N", args[0])
			if err != nil {
				return err
			}
			sets, err := parseGroups(together)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			req := pipeline.PermutationsRequest{N: n, Limit: limit}
			if len(sets) > 0 {
				req.Together = sets
			}
			var res *pipeline.Result[pipeline.Rows[[]int]]
			err = withSpinner(ctx, out.out != "", "Enumerating permutations...", func() error {
				res, err = runner.Permutations(ctx, req)
				return err
			})
			if err != nil {
				return err
			}
			if err := out.write(ctx, rowsResult(res.Value)); err != nil {
				return err
			}
			out.report(ctx, "permutations", len(res.Value.Rows), res.CacheHit, res.Duration)
			warnTruncated(res.Value.Truncated, len(res.Value.Rows), res.Value.Total)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many permutations (0 = all, capped by limits.max_results)")
	cmd.Flags().StringVar(&together, "together", "", `sets that must stay adjacent, e.g. "0,1;3,4"`)
	out.register(cmd, rowFormats)
	return cmd
}

// subsetsCommand creates the subsets command.
func (c *CLI) subsetsCommand() *cobra.Command {
	var (
		limit int
		out   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "subsets SIZE",
		Short: "List the non-empty subsets of 0..SIZE-1, largest first",
		Example: `  combikit subsets 4
  combikit subsets 12 --limit 100 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			size, err := parseSize("SIZE", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			var res *pipeline.Result[pipeline.Rows[[]int]]
			err = withSpinner(ctx, out.out != "", "Enumerating subsets...", func() error {
				res, err = runner.Subsets(ctx, pipeline.SubsetsRequest{Size: size, Limit: limit})
				return err
			})
			if err != nil {
				return err
			}
			if err := out.write(ctx, rowsResult(res.Value)); err != nil {
				return err
			}
			out.report(ctx, "subsets", len(res.Value.Rows), res.CacheHit, res.Duration)
			warnTruncated(res.Value.Truncated, len(res.Value.Rows), res.Value.Total)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many subsets (0 = all, capped by limits.max_results)")
	out.register(cmd, rowFormats)
	return cmd
}

// partitionsCommand creates the partitions command.
func (c *CLI) partitionsCommand() *cobra.Command {
	var (
		groups   string
		maxValue int
		limit    int
		out      outputFlags
	)

	cmd := &cobra.Command{
		Use:   "partitions [FILE]",
		Short: "List the ways whole groups combine into partitions of 0..max",
		Long: `List the ways whole groups of indices combine into partitions.

The first partition is all singletons. After that each group is tried alone
and together with every subset of the groups after it; combinations whose
groups overlap are skipped and uncovered indices are added as singletons.

Groups come from a JSON document (FILE, or "-" for stdin) or from --groups.`,
		Example: `  combikit partitions --groups "0,1,2;0,2;1,3"
  combikit partitions --groups "0,1;2,3" --max 5
  combikit partitions groups.json -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			req, err := partitionsRequest(args, groups)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max") {
				req.MaxValue = &maxValue
			}
			if cmd.Flags().Changed("limit") {
				req.Limit = limit
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			var res *pipeline.Result[pipeline.Rows[[][]int]]
			err = withSpinner(ctx, out.out != "", "Enumerating partitions...", func() error {
				res, err = runner.Partitions(ctx, req)
				return err
			})
			if err != nil {
				return err
			}
			if err := out.write(ctx, rowsResult(res.Value)); err != nil {
				return err
			}
			out.report(ctx, "partitions", len(res.Value.Rows), res.CacheHit, res.Duration)
			warnTruncated(res.Value.Truncated, len(res.Value.Rows), 0)
			return nil
		},
	}

	cmd.Flags().StringVarP(&groups, "groups", "g", "", `groups as "a,b;c,d"`)
	cmd.Flags().IntVar(&maxValue, "max", 0, "highest index of the universe (default: highest group index)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many partitions (0 = all, capped by limits.max_results)")
	out.register(cmd, rowFormats)
	return cmd
}

func partitionsRequest(args []string, groups string) (pipeline.PartitionsRequest, error) {
	switch {
	case len(args) == 1 && groups != "":
		return pipeline.PartitionsRequest{}, cerrors.New(cerrors.ErrCodeInvalidArgument, "give either FILE or --groups, not both")
	case len(args) == 1:
		return pkgio.Import(args[0], pkgio.ReadGroups)
	case groups != "":
		g, err := parseGroups(groups)
		if err != nil {
			return pipeline.PartitionsRequest{}, err
		}
		return pipeline.PartitionsRequest{Groups: g}, nil
	}
	return pipeline.PartitionsRequest{}, cerrors.New(cerrors.ErrCodeInvalidArgument, "no groups: pass FILE or --groups")
}

func rowsResult[T any](rows pipeline.Rows[T]) result {
	return result{
		value: rows,
		text:  func(w io.Writer) error { return pkgio.WriteRows(rows.Rows, w) },
	}
}

func warnTruncated(truncated bool, shown, total int) {
	if !truncated {
		return
	}
	if total > 0 {
		printWarning("showing %d of %d results", shown, total)
		return
	}
	printWarning("showing the first %d results", shown)
}
