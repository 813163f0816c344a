package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/graph"
	"github.com/matzehuels/gfakit/pkg/graph/transform"
)

type multiplyOpts struct {
	output   string
	copies   int
	tag      string
	unit     float64
	names    []string
	pathCopy int
}

func (c *CLI) multiplyCommand() *cobra.Command {
	var opts multiplyOpts

	cmd := &cobra.Command{
		Use:   "multiply FILE SEGMENT",
		Short: "Split a repeat segment into copies",
		Long: `Replace SEGMENT by copies that share its sequence and tags, spreading
its links over the copies. The copy count is --copies, or else the segment's
coverage tag divided by the coverage of a single copy (--unit, or the mean
of the tag over the graph when no unit is set).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("coverage-tag") {
				opts.tag = c.Config.Multiply.CoverageTag
			}
			if !cmd.Flags().Changed("unit") {
				opts.unit = c.Config.Multiply.Unit
			}

			name := args[1]
			n, err := copyCount(g, name, opts)
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("copy count", "segment", name, "copies", n)

			copies, err := transform.Multiply(g, name, n, transform.MultiplyOptions{
				Names:    opts.names,
				PathCopy: opts.pathCopy,
			})
			if err != nil {
				return err
			}

			printSuccess(cmd.ErrOrStderr(), "%s split into %d copies", name, len(copies))
			return writeGraph(cmd, g, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&opts.copies, "copies", "n", 0, "number of copies (default: estimate from coverage)")
	cmd.Flags().StringVar(&opts.tag, "coverage-tag", "RC", "numeric segment tag holding the coverage")
	cmd.Flags().Float64Var(&opts.unit, "unit", 0, "coverage of a single copy (default: graph mean)")
	cmd.Flags().StringSliceVar(&opts.names, "names", nil, "copy names (default NAME*1, NAME*2, ...)")
	cmd.Flags().IntVar(&opts.pathCopy, "path-copy", 0, "copy that takes over paths and containments")

	return cmd
}

// copyCount returns --copies when given, or the coverage estimate.
func copyCount(g *graph.Graph, name string, opts multiplyOpts) (int, error) {
	if opts.copies != 0 {
		return opts.copies, nil
	}
	if len(opts.names) > 0 {
		return len(opts.names), nil
	}

	seg, ok := g.Segment(name)
	if !ok {
		return 0, errors.New(errors.ErrCodeArgument, "segment %s is not defined", name)
	}
	unit := opts.unit
	if unit == 0 {
		mean, err := transform.MeanTag(g, opts.tag)
		if err != nil {
			return 0, fmt.Errorf("estimate single copy coverage: %w", err)
		}
		unit = mean
	}
	return transform.CopyNumber(seg, opts.tag, unit)
}
