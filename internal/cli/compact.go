package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/graph/transform"
)

type compactOpts struct {
	output string
	dryRun bool
}

func (c *CLI) compactCommand() *cobra.Command {
	var opts compactOpts

	cmd := &cobra.Command{
		Use:   "compact FILE",
		Short: "Merge unbranched chains of segments",
		Long: `Merge every maximal linear path into a single segment named after its
members joined by "_". Overlaps between members are trimmed, count tags are
summed and paths through a chain are shortened. Chains that cannot be merged
(a containment on a member, a path that enters the chain halfway) are left
as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx, cmd, args[0])
			if err != nil {
				return err
			}

			if opts.dryRun {
				w := cmd.OutOrStdout()
				for _, chain := range transform.LinearPaths(g) {
					steps := make([]string, len(chain))
					for i, s := range chain {
						steps[i] = s.String()
					}
					fmt.Fprintln(w, strings.Join(steps, ","))
				}
				return nil
			}

			prog := newProgress(loggerFromContext(ctx))
			res, err := transform.MergeLinearPaths(g)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Merged %d chains", len(res.Merged)))

			status := cmd.ErrOrStderr()
			printSuccess(status, "%d chains merged, %d segments removed", len(res.Merged), res.Removed)
			if res.Skipped > 0 {
				printWarning(status, "%d chains skipped", res.Skipped)
			}
			return writeGraph(cmd, g, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "list the linear paths without merging")

	return cmd
}
