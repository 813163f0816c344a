// Package nodelink draws GFA graphs as node-link diagrams.
//
// # Overview
//
// Each segment becomes a box and each link an edge drawn from the From
// segment to the To segment. GFA links are bidirected: the edge label
// shows the two orientations, and the arrow at each end tells which side
// of the segment the link touches (a plain arrow for the begin side, an
// inverted one for the end side). Containments are drawn as dotted edges
// from container to contained. Segments that are referenced but not
// defined are drawn dashed and grey.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Options
//
//   - Detailed: labels include the segment length and its tags
//   - Direction: Graphviz rankdir, "LR" when empty
//
// # Dependencies
//
// SVG is rendered in-process with [github.com/goccy/go-graphviz]. PDF and
// PNG conversion requires librsvg (rsvg-convert).
package nodelink
