package stats

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/gfakit/pkg/graph"
)

// Info is the statistics report of a graph.
type Info struct {
	Segments         int
	Links            int
	Containments     int
	Paths            int
	Components       int
	LargestComponent int // total length of the longest component
	DeadEnds         int
	Lengths          LengthStats
}

// Compute gathers the statistics report of g.
func Compute(g *graph.Graph) Info {
	comps := ComponentLengths(g)
	info := Info{
		Segments:     len(g.SegmentNames()),
		Links:        len(g.Links()),
		Containments: len(g.Containments()),
		Paths:        len(g.PathNames()),
		Components:   len(comps),
		DeadEnds:     len(DeadEnds(g)),
		Lengths:      Lengths(g),
	}
	if len(comps) > 0 {
		info.LargestComponent = slices.Max(comps)
	}
	return info
}

// DeadEndPercent returns dead ends as a share of all segment ends.
func (i Info) DeadEndPercent() float64 {
	if i.Segments == 0 {
		return 0
	}
	return float64(i.DeadEnds) * 100 / float64(2*i.Segments)
}

// Compact returns the one-line form: tab-separated key=value pairs for
// segment count, link count, component count, dead ends, total length and
// N50.
func (i Info) Compact() string {
	return fmt.Sprintf("ns=%d\tnl=%d\tcc=%d\tde=%d\ttl=%d\t50=%d",
		i.Segments, i.Links, i.Components, i.DeadEnds, i.Lengths.Total, i.Lengths.N50)
}

// Fields returns the report as ordered label/value pairs.
func (i Info) Fields() [][2]string {
	l := i.Lengths
	return [][2]string{
		{"Segments", fmt.Sprint(i.Segments)},
		{"Links", fmt.Sprint(i.Links)},
		{"Containments", fmt.Sprint(i.Containments)},
		{"Paths", fmt.Sprint(i.Paths)},
		{"Connected components", fmt.Sprint(i.Components)},
		{"Largest component", fmt.Sprintf("%d bp", i.LargestComponent)},
		{"Dead ends", fmt.Sprint(i.DeadEnds)},
		{"Dead ends (%)", fmt.Sprintf("%.2f", i.DeadEndPercent())},
		{"Total length", fmt.Sprintf("%d bp", l.Total)},
		{"Longest segment", fmt.Sprintf("%d bp", l.Max)},
		{"Q3 segment", fmt.Sprintf("%d bp", l.Q3)},
		{"Median segment", fmt.Sprintf("%d bp", l.Median)},
		{"Q1 segment", fmt.Sprintf("%d bp", l.Q1)},
		{"Shortest segment", fmt.Sprintf("%d bp", l.Min)},
		{"N50", fmt.Sprintf("%d bp", l.N50)},
	}
}

// String returns the multi-line report.
func (i Info) String() string {
	var b strings.Builder
	for _, f := range i.Fields() {
		fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
	}
	return b.String()
}
