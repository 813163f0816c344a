package transform

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

// MultiplyOptions controls how Multiply distributes a segment's records
// over its copies.
type MultiplyOptions struct {
	// Names are the copy names. Default: name*1 ... name*N. A copy may reuse
	// the original name.
	Names []string
	// Assign gives the copy index for each link at the segment, in the order
	// of graph.LinksAt. Default: links traversed by a path go to PathCopy,
	// the others round robin over all copies.
	Assign []int
	// PathCopy is the copy that takes over containments and paths.
	PathCopy int
}

// Multiply replaces the segment name by n copies with the same sequence and
// tags. Every link at the segment moves to one copy; a link from the
// segment to itself keeps both ends on that copy, so the number of links is
// unchanged. Containments and paths move to the copy at opts.PathCopy.
//
// With the default assignment every path keeps the links it walks, so a
// graph that validated before still validates. An explicit Assign that moves
// such a link away from PathCopy breaks the path's implied link.
//
// It returns the copies in copy order. Invalid arguments fail with
// INVALID_ARGUMENT and leave g unchanged.
func Multiply(g *graph.Graph, name string, n int, opts MultiplyOptions) ([]*gfa.Segment, error) {
	start := time.Now()
	work := g.Clone()
	copies, err := multiply(work, name, n, opts)
	g.Observer().OnTransform("multiply", fmt.Sprintf("%s x%d", name, n), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	g.Replace(work)
	return copies, nil
}

func multiply(g *graph.Graph, name string, n int, opts MultiplyOptions) ([]*gfa.Segment, error) {
	seg, ok := g.Segment(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeArgument, "segment %s is not defined", name)
	}
	if n < 1 {
		return nil, errors.New(errors.ErrCodeArgument, "copy count must be at least 1, got %d", n)
	}

	names := opts.Names
	if len(names) == 0 {
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("%s*%d", name, i+1)
		}
	}
	if len(names) != n {
		return nil, errors.New(errors.ErrCodeArgument, "%d copy names given for %d copies", len(names), n)
	}
	taken := make(map[string]bool, n)
	for _, cn := range names {
		if taken[cn] {
			return nil, errors.New(errors.ErrCodeArgument, "copy name %s is given twice", cn)
		}
		taken[cn] = true
		if cn != name && g.State(cn) != graph.Absent {
			return nil, errors.New(errors.ErrCodeArgument, "copy name %s is already in use", cn)
		}
	}

	if opts.PathCopy < 0 || opts.PathCopy >= n {
		return nil, errors.New(errors.ErrCodeArgument, "path copy %d out of range [0, %d)", opts.PathCopy, n)
	}

	links := g.LinksAt(name)
	paths := g.PathsThrough(name)
	assign := opts.Assign
	if len(assign) == 0 {
		assign = defaultAssign(links, walked(paths, name, links), n, opts.PathCopy)
	}
	if len(assign) != len(links) {
		return nil, errors.New(errors.ErrCodeArgument, "assignment covers %d links, segment %s has %d",
			len(assign), name, len(links))
	}
	for _, c := range assign {
		if c < 0 || c >= n {
			return nil, errors.New(errors.ErrCodeArgument, "assignment to copy %d out of range [0, %d)", c, n)
		}
	}

	containments := g.ContainmentsAt(name)

	copies := make([]*gfa.Segment, n)
	for i := range copies {
		c := gfa.Clone(seg).(*gfa.Segment)
		c.Name = names[i]
		copies[i] = c
	}

	if err := commitMultiply(g, seg, copies, links, assign, containments, paths, names[opts.PathCopy]); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "multiply %s", name)
	}
	return copies, nil
}

// walked returns the links at name that some path traverses.
func walked(paths []*gfa.Path, name string, links []*gfa.Link) map[*gfa.Link]bool {
	used := make(map[*gfa.Link]bool)
	for _, p := range paths {
		for _, j := range p.ImpliedLinks() {
			if j.From.Name != name && j.To.Name != name {
				continue
			}
			for _, l := range links {
				if l.Connects(j.From, j.To) {
					used[l] = true
				}
			}
		}
	}
	return used
}

func defaultAssign(links []*gfa.Link, used map[*gfa.Link]bool, n, pathCopy int) []int {
	assign := make([]int, len(links))
	next := 0
	for i, l := range links {
		if used[l] {
			assign[i] = pathCopy
			continue
		}
		assign[i] = next % n
		next++
	}
	return assign
}

func commitMultiply(g *graph.Graph, seg *gfa.Segment, copies []*gfa.Segment,
	links []*gfa.Link, assign []int, containments []*gfa.Containment, paths []*gfa.Path,
	pathCopy string) error {

	name := seg.Name
	if err := g.Update(seg, copies[0]); err != nil {
		return err
	}
	for _, c := range copies[1:] {
		if err := g.Add(c); err != nil {
			return err
		}
	}

	for i, l := range links {
		nl := gfa.Clone(l).(*gfa.Link)
		target := copies[assign[i]].Name
		if nl.From == name {
			nl.From = target
		}
		if nl.To == name {
			nl.To = target
		}
		if err := g.Update(l, nl); err != nil {
			return err
		}
	}
	for _, c := range containments {
		nc := gfa.Clone(c).(*gfa.Containment)
		if nc.Container == name {
			nc.Container = pathCopy
		}
		if nc.Contained == name {
			nc.Contained = pathCopy
		}
		if err := g.Update(c, nc); err != nil {
			return err
		}
	}
	for _, p := range paths {
		np := gfa.Clone(p).(*gfa.Path)
		for i, s := range np.Steps {
			if s.Name == name {
				np.Steps[i].Name = pathCopy
			}
		}
		if err := g.Update(p, np); err != nil {
			return err
		}
	}
	return nil
}

// CopyNumber estimates how many copies of seg the assembly collapsed: the
// value of the numeric tag divided by the coverage of a single copy,
// rounded, and at least 1.
func CopyNumber(seg *gfa.Segment, tag string, unit float64) (int, error) {
	if unit <= 0 {
		return 0, errors.New(errors.ErrCodeArgument, "single copy coverage must be positive, got %g", unit)
	}
	t, ok := seg.Tag(tag)
	if !ok {
		return 0, errors.New(errors.ErrCodeArgument, "segment %s has no %s tag", seg.Name, tag)
	}
	v, err := t.Number()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeArgument, err, "segment %s", seg.Name)
	}
	return max(int(math.Round(v/unit)), 1), nil
}

// MeanTag returns the mean value of a numeric tag over the segments that
// carry it. It fails with INVALID_ARGUMENT when no segment does.
func MeanTag(g *graph.Graph, tag string) (float64, error) {
	var sum float64
	n := 0
	for _, s := range g.Segments() {
		t, ok := s.Tag(tag)
		if !ok {
			continue
		}
		v, err := t.Number()
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeArgument, err, "segment %s", s.Name)
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, errors.New(errors.ErrCodeArgument, "no segment has a %s tag", tag)
	}
	return sum / float64(n), nil
}
