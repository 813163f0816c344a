package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

// Len returns the number of records, comments and headers included.
func (g *Graph) Len() int { return len(g.order) }

// Records returns every record in insertion order.
func (g *Graph) Records() []gfa.Record {
	out := make([]gfa.Record, len(g.order))
	for i, id := range g.order {
		out[i] = g.records[id]
	}
	return out
}

// Record returns the record with the given ID.
func (g *Graph) Record(id ID) (gfa.Record, bool) {
	r, ok := g.records[id]
	return r, ok
}

// ID returns the ID of r, or false if r is not in the graph.
func (g *Graph) ID(r gfa.Record) (ID, bool) {
	id, ok := g.ids[r]
	return id, ok
}

func recordsOf[T gfa.Record](g *Graph) []T {
	var out []T
	for _, id := range g.order {
		if r, ok := g.records[id].(T); ok {
			out = append(out, r)
		}
	}
	return out
}

// Segments returns the segments in insertion order.
func (g *Graph) Segments() []*gfa.Segment { return recordsOf[*gfa.Segment](g) }

// Links returns the links in insertion order.
func (g *Graph) Links() []*gfa.Link { return recordsOf[*gfa.Link](g) }

// Containments returns the containments in insertion order.
func (g *Graph) Containments() []*gfa.Containment { return recordsOf[*gfa.Containment](g) }

// Paths returns the paths in insertion order.
func (g *Graph) Paths() []*gfa.Path { return recordsOf[*gfa.Path](g) }

// Headers returns the individual header lines in insertion order. Use
// Header for the merged view.
func (g *Graph) Headers() []*gfa.Header { return recordsOf[*gfa.Header](g) }

// Comments returns the comments in insertion order.
func (g *Graph) Comments() []*gfa.Comment { return recordsOf[*gfa.Comment](g) }

// Header returns all header lines merged into one. When two lines set the
// same tag the later one wins. The result is a copy.
func (g *Graph) Header() *gfa.Header {
	h := gfa.NewHeader()
	for _, line := range g.Headers() {
		h.Merge(line)
	}
	return h
}

// SegmentNames returns the names of the defined segments in insertion order.
func (g *Graph) SegmentNames() []string {
	segs := g.Segments()
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Name
	}
	return names
}

// PathNames returns the names of the defined paths in insertion order.
func (g *Graph) PathNames() []string {
	paths := g.Paths()
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = p.Name
	}
	return names
}

// VirtualSegmentNames returns the names that are referenced but not
// defined, in the order of their first reference.
func (g *Graph) VirtualSegmentNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, id := range g.order {
		for _, name := range gfa.References(g.records[id]) {
			if g.State(name) == Virtual && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// Segment returns the segment with the given name.
func (g *Graph) Segment(name string) (*gfa.Segment, bool) {
	e, ok := g.segments[name]
	if !ok || e.def == 0 {
		return nil, false
	}
	return g.records[e.def].(*gfa.Segment), true
}

// Path returns the path with the given name.
func (g *Graph) Path(name string) (*gfa.Path, bool) {
	e, ok := g.paths[name]
	if !ok || e.def == 0 {
		return nil, false
	}
	return g.records[e.def].(*gfa.Path), true
}

// State returns the resolution state of a segment name.
func (g *Graph) State(name string) State {
	e, ok := g.segments[name]
	if !ok {
		return Absent
	}
	return e.state()
}

// PathState returns the resolution state of a path name.
func (g *Graph) PathState(name string) State {
	e, ok := g.paths[name]
	if !ok {
		return Absent
	}
	return e.state()
}

// ReferencesTo returns the links, containments and paths that mention the
// segment name, in insertion order.
func (g *Graph) ReferencesTo(name string) []gfa.Record {
	e, ok := g.segments[name]
	if !ok || len(e.refs) == 0 {
		return nil
	}
	// IDs grow with insertion, so ID order is store order.
	ids := slices.Sorted(maps.Keys(e.refs))
	out := make([]gfa.Record, len(ids))
	for i, id := range ids {
		out[i] = g.records[id]
	}
	return out
}

// LinksAt returns the links with at least one end on the segment name, in
// insertion order.
func (g *Graph) LinksAt(name string) []*gfa.Link {
	var out []*gfa.Link
	for _, r := range g.ReferencesTo(name) {
		if l, ok := r.(*gfa.Link); ok {
			out = append(out, l)
		}
	}
	return out
}

// ContainmentsAt returns the containments that mention the segment name as
// container or contained, in insertion order.
func (g *Graph) ContainmentsAt(name string) []*gfa.Containment {
	var out []*gfa.Containment
	for _, r := range g.ReferencesTo(name) {
		if c, ok := r.(*gfa.Containment); ok {
			out = append(out, c)
		}
	}
	return out
}

// PathsThrough returns the paths that visit the segment name, in insertion
// order.
func (g *Graph) PathsThrough(name string) []*gfa.Path {
	var out []*gfa.Path
	for _, r := range g.ReferencesTo(name) {
		if p, ok := r.(*gfa.Path); ok {
			out = append(out, p)
		}
	}
	return out
}
