package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gfaio "github.com/matzehuels/gfakit/pkg/io"
)

type convertOpts struct {
	output string
	format string // json or gfa
}

func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Write a graph as JSON or normalized GFA",
		Long: `Write the JSON view of a graph, or its GFA text with blank lines
dropped. An output name ending in ".gz" is compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			switch strings.ToLower(opts.format) {
			case "gfa":
				return writeGraph(cmd, g, opts.output)
			case "json":
				if opts.output == "" || opts.output == "-" {
					return gfaio.WriteJSON(g, cmd.OutOrStdout())
				}
				if err := gfaio.ExportJSON(g, opts.output); err != nil {
					return err
				}
				printFile(cmd.ErrOrStderr(), opts.output)
				return nil
			}
			return fmt.Errorf("invalid format: %s (must be 'json' or 'gfa')", opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format: json, gfa")

	return cmd
}
