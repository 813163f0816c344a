package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// validFormats is the set of supported render formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPDF: true, formatPNG: true}

type renderOpts struct {
	output    string  // output file path
	format    string  // dot, svg, pdf or png
	detailed  bool    // lengths and tags in node labels
	direction string  // Graphviz rankdir
	scale     float64 // PNG scale factor
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the graph as a node-link diagram",
		Long: `Draw segments as boxes and links as edges. Arrows mark the side of a
segment a link touches. Without --format, the format follows the extension
of --output and defaults to svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = resolveFormat(opts.format, opts.output)
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.Config.Render.Detailed
			}
			if !cmd.Flags().Changed("direction") {
				opts.direction = c.Config.Render.Direction
			}

			ctx := cmd.Context()
			g, err := c.loadGraph(ctx, cmd, args[0])
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed, Direction: opts.direction})

			var data []byte
			switch opts.format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = nodelink.RenderSVG(ctx, dot)
			case formatPDF:
				data, err = nodelink.RenderPDF(ctx, dot)
			case formatPNG:
				data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
			}
			if err != nil {
				return err
			}
			prog.done("Rendered " + opts.format)
			return writeBytes(cmd, data, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show segment lengths and tags")
	cmd.Flags().StringVar(&opts.direction, "direction", "LR", "layout direction: LR, TB, RL, BT")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2.0, "PNG scale factor")

	return cmd
}

// resolveFormat returns format, or the extension of output, or svg.
func resolveFormat(format, output string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); validFormats[strings.ToLower(ext)] {
		return strings.ToLower(ext)
	}
	return formatSVG
}

func validateFormat(format string) error {
	if !validFormats[format] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'pdf', or 'png')", format)
	}
	return nil
}
