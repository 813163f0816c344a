package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
	"github.com/matzehuels/gfakit/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the segment length and tags to node labels.
	// When false, only the segment name is shown.
	Detailed bool
	// Direction is the Graphviz rankdir (LR, TB, RL, BT). Default: LR.
	Direction string
}

// ToDOT converts a graph to Graphviz DOT format. The resulting DOT string
// can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Segments appear in store order, followed by virtual segments in the order
// they are first referenced.
func ToDOT(g *graph.Graph, opts Options) string {
	dir := opts.Direction
	if dir == "" {
		dir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", dir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [dir=both, fontsize=10];\n")
	buf.WriteString("\n")

	for _, s := range g.Segments() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", s.Name, fmtLabel(s, opts.Detailed))
	}
	for _, name := range g.VirtualSegmentNames() {
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(virtualAttrs(name), ", "))
	}

	buf.WriteString("\n")
	for _, l := range g.Links() {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", l.From, l.To, strings.Join(linkAttrs(l), ", "))
	}
	for _, c := range g.Containments() {
		fmt.Fprintf(&buf, "  %q -> %q [style=dotted, dir=forward, label=%q];\n",
			c.Container, c.Contained, "pos "+c.Pos.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s *gfa.Segment, detailed bool) string {
	if !detailed {
		return s.Name
	}

	parts := []string{s.Name}
	if s.HasLength() {
		parts = append(parts, fmt.Sprintf("%d bp", s.Length()))
	}
	for _, t := range s.Tags {
		if t.Name == "LN" {
			continue
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "\n")
}

func virtualAttrs(name string) []string {
	return []string{
		fmt.Sprintf("label=%q", name),
		"style=\"rounded,filled,dashed\"",
		"fillcolor=lightgrey",
		"fontcolor=black",
	}
}

// arrow marks the side of a segment an edge end touches.
func arrow(side gfa.Orientation, from bool) string {
	// The From end leaves through the end side when forward; the To end
	// enters through the begin side when forward.
	if (side == gfa.Forward) == from {
		return "inv"
	}
	return "normal"
}

func linkAttrs(l *gfa.Link) []string {
	label := l.FromOrient.String() + l.ToOrient.String()
	if !l.Overlap.IsPlaceholder() {
		label += " " + l.Overlap.String()
	}
	return []string{
		fmt.Sprintf("label=%q", label),
		"arrowtail=" + arrow(l.FromOrient, true),
		"arrowhead=" + arrow(l.ToOrient, false),
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales from
// the origin regardless of the offsets Graphviz picked.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
