package transform

import (
	"slices"

	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
	"github.com/matzehuels/gfakit/pkg/graph/stats"
)

// exit is the end through which a walk leaves the step's segment.
func exit(s gfa.Step) stats.End {
	if s.Orient == gfa.Forward {
		return stats.End{Segment: s.Name, Side: stats.SideEnd}
	}
	return stats.End{Segment: s.Name, Side: stats.SideBegin}
}

// entry is the end through which a walk enters the step's segment.
func entry(s gfa.Step) stats.End {
	e := exit(s)
	e.Side = e.Side.Invert()
	return e
}

// stepInto returns the step that enters a segment through end e.
func stepInto(e stats.End) gfa.Step {
	if e.Side == stats.SideBegin {
		return gfa.Fwd(e.Segment)
	}
	return gfa.Rev(e.Segment)
}

// follow returns the step after s when the junction is unbranched: the exit
// of s has one link, which leads to an end of another segment that has no
// other link.
func follow(inc map[stats.End][]*gfa.Link, s gfa.Step) (gfa.Step, bool) {
	out := exit(s)
	links := inc[out]
	if len(links) != 1 {
		return gfa.Step{}, false
	}
	from, to := stats.LinkEnds(links[0])
	other := to
	if from != out {
		other = from
	}
	if other.Segment == s.Name || len(inc[other]) != 1 {
		return gfa.Step{}, false
	}
	return stepInto(other), true
}

// LinearPaths returns every maximal unbranched chain of two or more
// segments. Chains that close into a cycle are left out. Each chain is read
// in the direction that starts at the member added to the graph first
// among its two extremities.
func LinearPaths(g *graph.Graph) [][]gfa.Step {
	inc := stats.Incidence(g)
	names := g.SegmentNames()
	pos := make(map[string]int, len(names))
	for i, name := range names {
		pos[name] = i
	}

	used := make(map[string]bool)
	var chains [][]gfa.Step
	for _, name := range names {
		if used[name] {
			continue
		}
		chain, cyclic := walk(inc, name)
		for _, s := range chain {
			used[s.Name] = true
		}
		if cyclic || len(chain) < 2 {
			continue
		}
		if pos[chain[len(chain)-1].Name] < pos[chain[0].Name] {
			chain = reverseChain(chain)
		}
		chains = append(chains, chain)
	}
	return chains
}

func walk(inc map[stats.End][]*gfa.Link, name string) (chain []gfa.Step, cyclic bool) {
	chain = []gfa.Step{gfa.Fwd(name)}
	in := map[string]bool{name: true}

	for {
		next, ok := follow(inc, chain[len(chain)-1])
		if !ok {
			break
		}
		if in[next.Name] {
			return chain, true
		}
		in[next.Name] = true
		chain = append(chain, next)
	}
	for {
		prev, ok := follow(inc, chain[0].Invert())
		if !ok {
			break
		}
		if in[prev.Name] {
			return chain, true
		}
		in[prev.Name] = true
		chain = slices.Insert(chain, 0, prev.Invert())
	}
	return chain, false
}

// reverseChain returns the same chain read on the other strand.
func reverseChain(chain []gfa.Step) []gfa.Step {
	out := make([]gfa.Step, len(chain))
	for i, s := range chain {
		out[len(chain)-1-i] = s.Invert()
	}
	return out
}
