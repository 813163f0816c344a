package transform

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
	"github.com/matzehuels/gfakit/pkg/graph/stats"
)

// countTags are summed into the merged segment when every member has them.
var countTags = []string{"KC", "RC", "FC"}

// Result summarizes a MergeLinearPaths run.
type Result struct {
	Merged  []string // names of the merged segments
	Removed int      // member segments replaced by merged ones
	Skipped int      // chains left alone because a precondition failed
}

// MergeLinearPath merges the chain into a single segment named by joining
// the member names with "_", and returns the new segment.
//
// The chain must list at least two distinct defined segments, consecutive
// steps must be joined by an unbranched link, no member may take part in a
// containment, every path that visits a member must traverse the whole
// chain, and the merged name must be unused. Otherwise the call fails with
// INVALID_ARGUMENT and g is unchanged.
func MergeLinearPath(g *graph.Graph, chain []gfa.Step) (*gfa.Segment, error) {
	start := time.Now()
	work := g.Clone()
	merged, err := mergeChain(work, chain)
	g.Observer().OnTransform("merge", chainString(chain), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	g.Replace(work)
	return merged, nil
}

// MergeLinearPaths merges every chain found by LinearPaths. Chains that do
// not meet the preconditions of MergeLinearPath are skipped. When nothing is
// merged g is left untouched.
func MergeLinearPaths(g *graph.Graph) (Result, error) {
	start := time.Now()
	work := g.Clone()

	var res Result
	for _, chain := range LinearPaths(work) {
		merged, err := mergeChain(work, chain)
		if errors.Is(err, errors.ErrCodeArgument) {
			res.Skipped++
			continue
		}
		if err != nil {
			g.Observer().OnTransform("compact", "", time.Since(start), err)
			return Result{}, err
		}
		res.Merged = append(res.Merged, merged.Name)
		res.Removed += len(chain)
	}

	detail := fmt.Sprintf("%d chains merged, %d skipped", len(res.Merged), res.Skipped)
	g.Observer().OnTransform("compact", detail, time.Since(start), nil)
	if len(res.Merged) > 0 {
		g.Replace(work)
	}
	return res, nil
}

// mergeChain checks every precondition before it touches g. A failure after
// that point is reported as an internal error.
func mergeChain(g *graph.Graph, chain []gfa.Step) (*gfa.Segment, error) {
	if len(chain) < 2 {
		return nil, errors.New(errors.ErrCodeArgument, "a chain needs at least two segments, got %d", len(chain))
	}

	members := make([]*gfa.Segment, len(chain))
	orient := make(map[string]gfa.Orientation, len(chain))
	for i, s := range chain {
		seg, ok := g.Segment(s.Name)
		if !ok {
			return nil, errors.New(errors.ErrCodeArgument, "segment %s is not defined", s.Name)
		}
		if _, dup := orient[s.Name]; dup {
			return nil, errors.New(errors.ErrCodeArgument, "segment %s appears twice in the chain", s.Name)
		}
		if len(g.ContainmentsAt(s.Name)) > 0 {
			return nil, errors.New(errors.ErrCodeArgument, "segment %s takes part in a containment", s.Name)
		}
		members[i] = seg
		orient[s.Name] = s.Orient
	}

	inc := stats.Incidence(g)
	inner := make(map[*gfa.Link]bool, len(chain)-1)
	overlaps := make([]gfa.Overlap, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		a, b := chain[i], chain[i+1]
		out, in := inc[exit(a)], inc[entry(b)]
		if len(out) != 1 || len(in) != 1 || out[0] != in[0] {
			return nil, errors.New(errors.ErrCodeArgument, "%s and %s are not joined by an unbranched link", a, b)
		}
		l := out[0]
		switch {
		case l.FromStep() == a && l.ToStep() == b:
			overlaps[i] = l.Overlap
		case l.Connects(a, b):
			overlaps[i] = l.Overlap.Complement()
		default:
			return nil, errors.New(errors.ErrCodeArgument, "no link joins %s to %s", a, b)
		}
		inner[l] = true
	}

	name := mergedName(chain)
	if g.State(name) != graph.Absent {
		return nil, errors.New(errors.ErrCodeArgument, "merged name %s is already in use", name)
	}

	paths := make(map[*gfa.Path]*gfa.Path)
	for _, p := range g.Paths() {
		if !visits(p, orient) {
			continue
		}
		np, err := collapsePath(p, chain, name)
		if err != nil {
			return nil, err
		}
		paths[p] = np
	}

	var outer []*gfa.Link
	seen := make(map[*gfa.Link]bool)
	for _, m := range members {
		for _, l := range g.LinksAt(m.Name) {
			if !inner[l] && !seen[l] {
				seen[l] = true
				outer = append(outer, l)
			}
		}
	}

	merged := mergeSegments(name, chain, members, overlaps)
	if err := commitMerge(g, members, merged, outer, inner, paths, orient); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "merge %s", name)
	}
	return merged, nil
}

func commitMerge(g *graph.Graph, members []*gfa.Segment, merged *gfa.Segment,
	outer []*gfa.Link, inner map[*gfa.Link]bool, paths map[*gfa.Path]*gfa.Path,
	orient map[string]gfa.Orientation) error {

	if err := g.Update(members[0], merged); err != nil {
		return err
	}
	for _, l := range outer {
		if err := g.Update(l, redirectLink(l, orient, merged.Name)); err != nil {
			return err
		}
	}
	// Paths are rewritten in store order.
	for _, p := range g.Paths() {
		if np, ok := paths[p]; ok {
			if err := g.Update(p, np); err != nil {
				return err
			}
		}
	}
	for l := range inner {
		if err := g.DeleteRecord(l); err != nil {
			return err
		}
	}
	for _, m := range members[1:] {
		if err := g.DeleteRecord(m); err != nil {
			return err
		}
	}
	return nil
}

func mergedName(chain []gfa.Step) string {
	names := make([]string, len(chain))
	for i, s := range chain {
		names[i] = s.Name
	}
	return strings.Join(names, "_")
}

func chainString(chain []gfa.Step) string {
	steps := make([]string, len(chain))
	for i, s := range chain {
		steps[i] = s.String()
	}
	return strings.Join(steps, ",")
}

// mergeSegments builds the merged segment. overlaps[i] is the overlap of the
// junction from chain[i] to chain[i+1], read in chain direction.
func mergeSegments(name string, chain []gfa.Step, members []*gfa.Segment, overlaps []gfa.Overlap) *gfa.Segment {
	withSeq, withLen, hadLN := true, true, false
	for _, m := range members {
		withSeq = withSeq && m.HasSequence()
		withLen = withLen && m.HasLength()
		hadLN = hadLN || m.HasTag("LN")
	}

	var seq strings.Builder
	total := 0
	for i, m := range members {
		cut := 0
		if i > 0 {
			cut = min(overlaps[i-1].Length(), m.Length())
		}
		total += m.Length() - cut
		if withSeq {
			s := m.Sequence
			if chain[i].Orient == gfa.Reverse {
				s = gfa.ReverseComplement(s)
			}
			seq.WriteString(s[min(cut, len(s)):])
		}
	}

	merged := gfa.NewSegment(name, seq.String())
	switch {
	case withSeq && hadLN:
		merged.SetTag(gfa.NewInt("LN", int64(seq.Len())))
	case !withSeq && withLen:
		merged.SetTag(gfa.NewInt("LN", int64(total)))
	}

	for _, tag := range countTags {
		if sum, ok := sumTag(members, tag); ok {
			merged.SetTag(gfa.NewInt(tag, sum))
		}
	}
	return merged
}

func sumTag(members []*gfa.Segment, name string) (int64, bool) {
	var sum int64
	for _, m := range members {
		t, ok := m.Tag(name)
		if !ok {
			return 0, false
		}
		v, err := t.Int()
		if err != nil {
			return 0, false
		}
		sum += v
	}
	return sum, true
}

// redirectLink returns a copy of l with every end on a chain member moved to
// the merged segment. An end keeps its orientation when it agrees with the
// member's orientation in the chain and is inverted otherwise.
func redirectLink(l *gfa.Link, orient map[string]gfa.Orientation, name string) *gfa.Link {
	nl := gfa.Clone(l).(*gfa.Link)
	if o, ok := orient[nl.From]; ok {
		nl.From, nl.FromOrient = name, relative(nl.FromOrient, o)
	}
	if o, ok := orient[nl.To]; ok {
		nl.To, nl.ToOrient = name, relative(nl.ToOrient, o)
	}
	return nl
}

func relative(o, chain gfa.Orientation) gfa.Orientation {
	if o == chain {
		return gfa.Forward
	}
	return gfa.Reverse
}

func visits(p *gfa.Path, members map[string]gfa.Orientation) bool {
	for _, s := range p.Steps {
		if _, ok := members[s.Name]; ok {
			return true
		}
	}
	return false
}

// collapsePath replaces every full traversal of chain in p, in either
// direction, by a single step on the merged segment.
func collapsePath(p *gfa.Path, chain []gfa.Step, name string) (*gfa.Path, error) {
	members := make(map[string]bool, len(chain))
	for _, s := range chain {
		members[s.Name] = true
	}
	rev := reverseChain(chain)
	hasOverlaps := p.HasOverlaps()

	var steps []gfa.Step
	var overlaps []gfa.Overlap
	for i := 0; i < len(p.Steps); {
		step, width := p.Steps[i], 1
		if members[step.Name] {
			switch {
			case hasPrefix(p.Steps[i:], chain):
				step, width = gfa.Fwd(name), len(chain)
			case hasPrefix(p.Steps[i:], rev):
				step, width = gfa.Rev(name), len(chain)
			default:
				return nil, errors.New(errors.ErrCodeArgument, "path %s traverses chain %s only partially",
					p.Name, chainString(chain))
			}
		}
		if hasOverlaps && len(steps) > 0 {
			overlaps = append(overlaps, p.OverlapAt(i-1))
		}
		steps = append(steps, step)
		i += width
	}
	if hasOverlaps && len(p.Overlaps) == len(p.Steps) {
		overlaps = append(overlaps, p.Overlaps[len(p.Overlaps)-1])
	}

	np := gfa.Clone(p).(*gfa.Path)
	np.Steps = steps
	if hasOverlaps {
		np.Overlaps = overlaps
	}
	if len(np.Overlaps) == 0 {
		np.Overlaps = []gfa.Overlap{gfa.NoOverlap}
	}
	return np, nil
}

func hasPrefix(steps, prefix []gfa.Step) bool {
	return len(steps) >= len(prefix) && slices.Equal(steps[:len(prefix)], prefix)
}
