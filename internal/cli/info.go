package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/graph"
	"github.com/matzehuels/gfakit/pkg/graph/stats"
)

type infoOpts struct {
	compact    bool // one tab-separated line
	components bool // list each connected component
	noCache    bool // always recompute the report
}

func (c *CLI) infoCommand() *cobra.Command {
	var opts infoOpts

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Print graph statistics",
		Long: `Print segment, link and path counts, connectivity, dead ends and
segment length statistics including N50. FILE may be "-" for standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := newCache(opts.noCache)
			defer store.Close()

			// The component table needs the graph itself.
			key, cacheable := c.infoKey(args[0])
			cacheable = cacheable && !opts.components

			info, hit := stats.Info{}, false
			if cacheable {
				info, hit = cachedInfo(ctx, store, key)
			}
			var g *graph.Graph
			if !hit {
				var err error
				if g, err = c.loadGraph(ctx, cmd, args[0]); err != nil {
					return err
				}
				info = stats.Compute(g)
				if cacheable {
					storeInfo(ctx, store, key, info)
				}
			} else {
				loggerFromContext(ctx).Debug("report from cache", "file", args[0])
			}

			w := cmd.OutOrStdout()
			if opts.compact {
				fmt.Fprintln(w, info.Compact())
				return nil
			}

			fmt.Fprintln(w, StyleTitle.Render(args[0]))
			for _, f := range info.Fields() {
				printKeyValue(w, f[0], f[1])
			}
			if opts.components {
				comps := stats.ConnectedComponents(g)
				lengths := stats.ComponentLengths(g)
				rows := make([][]string, len(comps))
				for i, comp := range comps {
					rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(len(comp)), strconv.Itoa(lengths[i])}
				}
				fmt.Fprintln(w)
				printTable(w, []string{"Component", "Segments", "Length (bp)"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.compact, "compact", "c", false, "print one tab-separated line")
	cmd.Flags().BoolVar(&opts.components, "components", false, "list connected components")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "recompute the report even if it is cached")

	return cmd
}
