package stats

import (
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

// Side selects one of the two ends of a segment.
type Side int

const (
	SideBegin Side = iota
	SideEnd
)

func (s Side) String() string {
	if s == SideBegin {
		return "begin"
	}
	return "end"
}

// Invert returns the other side.
func (s Side) Invert() Side { return 1 - s }

// End is one end of a segment.
type End struct {
	Segment string
	Side    Side
}

func (e End) String() string { return e.Segment + ":" + e.Side.String() }

// LinkEnds returns the two segment ends joined by l.
func LinkEnds(l *gfa.Link) (from, to End) {
	from = End{Segment: l.From, Side: SideEnd}
	if l.FromOrient == gfa.Reverse {
		from.Side = SideBegin
	}
	to = End{Segment: l.To, Side: SideBegin}
	if l.ToOrient == gfa.Reverse {
		to.Side = SideEnd
	}
	return from, to
}

// resolvedLinks returns the links whose both ends are defined segments.
func resolvedLinks(g *graph.Graph) []*gfa.Link {
	var out []*gfa.Link
	for _, l := range g.Links() {
		if g.State(l.From) == graph.Real && g.State(l.To) == graph.Real {
			out = append(out, l)
		}
	}
	return out
}

// Incidence maps every segment end to the links touching it, in link
// order. A link that touches the same end twice is listed twice.
func Incidence(g *graph.Graph) map[End][]*gfa.Link {
	inc := make(map[End][]*gfa.Link)
	for _, l := range resolvedLinks(g) {
		from, to := LinkEnds(l)
		inc[from] = append(inc[from], l)
		inc[to] = append(inc[to], l)
	}
	return inc
}

// Degree returns the number of link ends on every segment end.
func Degree(g *graph.Graph) map[End]int {
	deg := make(map[End]int)
	for end, links := range Incidence(g) {
		deg[end] = len(links)
	}
	return deg
}

// DeadEnds returns the segment ends without links, in segment order with the
// begin before the end.
func DeadEnds(g *graph.Graph) []End {
	deg := Degree(g)
	var out []End
	for _, name := range g.SegmentNames() {
		for _, side := range []Side{SideBegin, SideEnd} {
			e := End{Segment: name, Side: side}
			if deg[e] == 0 {
				out = append(out, e)
			}
		}
	}
	return out
}

// ConnectedComponents groups segments that are joined by links, ignoring
// orientation. Components are ordered by their first segment in the graph;
// members are listed in breadth-first order.
func ConnectedComponents(g *graph.Graph) [][]string {
	adj := make(map[string][]string)
	for _, l := range resolvedLinks(g) {
		adj[l.From] = append(adj[l.From], l.To)
		if !l.IsSelf() {
			adj[l.To] = append(adj[l.To], l.From)
		}
	}

	seen := make(map[string]bool)
	var comps [][]string
	for _, start := range g.SegmentNames() {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []string{start}
		for i := 0; i < len(comp); i++ {
			for _, next := range adj[comp[i]] {
				if !seen[next] {
					seen[next] = true
					comp = append(comp, next)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ComponentLengths returns the total segment length of every connected
// component, in the order of ConnectedComponents.
func ComponentLengths(g *graph.Graph) []int {
	comps := ConnectedComponents(g)
	out := make([]int, len(comps))
	for i, comp := range comps {
		for _, name := range comp {
			if s, ok := g.Segment(name); ok {
				out[i] += s.Length()
			}
		}
	}
	return out
}
