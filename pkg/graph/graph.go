package graph

import (
	"slices"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/observability"
)

// ID identifies a record inside one Graph. IDs are assigned on Add, are never
// reused, and survive Clone.
type ID int

// State is the resolution state of a named entity.
type State int

const (
	// Absent means the name is unknown to the graph.
	Absent State = iota
	// Virtual means the name is referenced but not defined.
	Virtual
	// Real means the defining record is in the graph.
	Real
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Virtual:
		return "virtual"
	case Real:
		return "real"
	}
	return "unknown"
}

// Options configures a Graph.
type Options struct {
	// Level controls how strictly lines are checked. The zero value is
	// gfa.LevelNone.
	Level gfa.Level
	// StrictOrdering rejects references to names that have not been defined
	// yet.
	StrictOrdering bool
	// Observer receives load, validate and transform events. Nil means no
	// events are reported.
	Observer observability.Observer
}

// entity tracks one segment or path name.
type entity struct {
	def  ID              // defining record, 0 while virtual
	refs map[ID]struct{} // records that mention the name
}

func (e *entity) state() State {
	if e.def != 0 {
		return Real
	}
	return Virtual
}

// Graph is a GFA graph: an ordered collection of records plus the indices
// that resolve names between them.
//
// The zero value is not usable; create graphs with New, Parse or ParseLines.
// Records handed to Add are owned by the graph afterwards. They may be read
// and their tags edited, but positional fields that name segments or paths
// must not be changed in place; delete and re-add the record instead.
type Graph struct {
	obs      observability.Observer
	options  Options
	nextID   ID
	records  map[ID]gfa.Record
	ids      map[gfa.Record]ID
	order    []ID
	segments map[string]*entity
	paths    map[string]*entity
}

// New creates an empty graph.
func New(opts Options) *Graph {
	return &Graph{
		obs:      observability.OrNoop(opts.Observer),
		options:  opts,
		nextID:   1,
		records:  make(map[ID]gfa.Record),
		ids:      make(map[gfa.Record]ID),
		segments: make(map[string]*entity),
		paths:    make(map[string]*entity),
	}
}

// Options returns the options the graph was created with.
func (g *Graph) Options() Options { return g.options }

// Level returns the validation level.
func (g *Graph) Level() gfa.Level { return g.options.Level }

// Observer returns the graph's observer. It is never nil.
func (g *Graph) Observer() observability.Observer { return g.obs }

// AddLine parses line at the graph's level and adds the resulting record.
func (g *Graph) AddLine(line string) error {
	r, err := gfa.ParseLine(line, g.options.Level)
	if err != nil {
		return err
	}
	return g.add(r, true)
}

// Add inserts a record at the end of the graph.
//
// Adding a segment or path whose name is already defined fails with
// NOT_UNIQUE. With StrictOrdering, a link, containment or path that mentions
// an undefined segment fails with LINE_MISSING. At level 2 and above the
// record's content is checked first. On error the graph is unchanged.
func (g *Graph) Add(r gfa.Record) error {
	return g.add(r, false)
}

func (g *Graph) add(r gfa.Record, parsed bool) error {
	if err := g.checkInsert(r, 0, parsed); err != nil {
		return err
	}

	id := g.nextID
	g.nextID++
	g.order = append(g.order, id)
	g.attach(id, r)
	return nil
}

// checkInsert runs the checks shared by Add and Update. self is the ID
// the record will take over, 0 for a fresh insert.
func (g *Graph) checkInsert(r gfa.Record, self ID, parsed bool) error {
	if r == nil {
		return errors.New(errors.ErrCodeArgument, "nil record")
	}
	if _, ok := g.ids[r]; ok {
		return errors.New(errors.ErrCodeArgument, "record is already in the graph").WithLines(r.String())
	}
	if !parsed && g.options.Level >= gfa.LevelStrict {
		if err := gfa.Check(r); err != nil {
			return errors.AttachLines(err, r.String())
		}
	}

	switch r := r.(type) {
	case *gfa.Segment:
		if e, ok := g.segments[r.Name]; ok && e.def != 0 && e.def != self {
			return errors.New(errors.ErrCodeNotUnique, "segment %s is already defined", r.Name).
				WithLines(g.records[e.def].String(), r.String())
		}
	case *gfa.Path:
		if e, ok := g.paths[r.Name]; ok && e.def != 0 && e.def != self {
			return errors.New(errors.ErrCodeNotUnique, "path %s is already defined", r.Name).
				WithLines(g.records[e.def].String(), r.String())
		}
	}

	if g.options.StrictOrdering {
		for _, name := range gfa.References(r) {
			if _, ok := g.segments[name]; !ok {
				return errors.New(errors.ErrCodeLineMissing, "segment %s is referenced before it is defined", name).
					WithLines(r.String())
			}
		}
	}
	return nil
}

// attach stores r under id and registers its name and references.
func (g *Graph) attach(id ID, r gfa.Record) {
	g.records[id] = r
	g.ids[r] = id
	switch r := r.(type) {
	case *gfa.Segment:
		g.entity(g.segments, r.Name).def = id
	case *gfa.Path:
		g.entity(g.paths, r.Name).def = id
	}
	for _, name := range gfa.References(r) {
		g.entity(g.segments, name).refs[id] = struct{}{}
	}
}

// detach is the inverse of attach. The ID keeps its slot in g.order.
func (g *Graph) detach(id ID, r gfa.Record) {
	switch r := r.(type) {
	case *gfa.Segment:
		g.undefine(g.segments, r.Name)
	case *gfa.Path:
		g.undefine(g.paths, r.Name)
	}
	for _, name := range gfa.References(r) {
		if e, ok := g.segments[name]; ok {
			delete(e.refs, id)
			if e.def == 0 && len(e.refs) == 0 {
				delete(g.segments, name)
			}
		}
	}
	delete(g.records, id)
	delete(g.ids, r)
}

func (g *Graph) entity(index map[string]*entity, name string) *entity {
	e, ok := index[name]
	if !ok {
		e = &entity{refs: make(map[ID]struct{})}
		index[name] = e
	}
	return e
}

// Delete removes the segment or path with the given name. kind must be
// gfa.KindSegment or gfa.KindPath. An undefined name fails with
// LINE_MISSING.
func (g *Graph) Delete(kind gfa.Kind, name string) error {
	var index map[string]*entity
	switch kind {
	case gfa.KindSegment:
		index = g.segments
	case gfa.KindPath:
		index = g.paths
	default:
		return errors.New(errors.ErrCodeArgument, "cannot delete %s records by name", kind)
	}
	e, ok := index[name]
	if !ok || e.def == 0 {
		return errors.New(errors.ErrCodeLineMissing, "%s %s is not defined", kind, name)
	}
	return g.DeleteRecord(g.records[e.def])
}

// DeleteSegment removes the segment with the given name.
func (g *Graph) DeleteSegment(name string) error { return g.Delete(gfa.KindSegment, name) }

// DeletePath removes the path with the given name.
func (g *Graph) DeletePath(name string) error { return g.Delete(gfa.KindPath, name) }

// DeleteRecord removes r from the graph. Segments that r referenced lose the
// back-reference; a virtual segment with no references left is forgotten.
// Deleting a segment or path that is still referenced leaves its name
// virtual.
func (g *Graph) DeleteRecord(r gfa.Record) error {
	id, ok := g.ids[r]
	if !ok {
		return errors.New(errors.ErrCodeLineMissing, "record is not in the graph")
	}

	g.detach(id, r)
	g.order = slices.DeleteFunc(g.order, func(x ID) bool { return x == id })
	return nil
}

// Update replaces old with repl in place: repl takes over old's position
// and ID. It is the way to rename a segment or rewrite the endpoints of a
// link or path. repl must be a record that is not in the graph yet. The
// checks of Add apply, except that repl may reuse old's name. On error the
// graph is unchanged.
func (g *Graph) Update(old, repl gfa.Record) error {
	id, ok := g.ids[old]
	if !ok {
		return errors.New(errors.ErrCodeLineMissing, "record is not in the graph")
	}
	if err := g.checkInsert(repl, id, false); err != nil {
		return err
	}
	g.detach(id, old)
	g.attach(id, repl)
	return nil
}

func (g *Graph) undefine(index map[string]*entity, name string) {
	e, ok := index[name]
	if !ok {
		return
	}
	e.def = 0
	if len(e.refs) == 0 {
		delete(index, name)
	}
}

// Clone returns a deep copy of g: same records in the same order with the
// same IDs, tags and entity states. The copy shares nothing with g except
// the observer.
func (g *Graph) Clone() *Graph {
	c := New(g.options)
	c.obs = g.obs
	c.nextID = g.nextID
	c.order = slices.Clone(g.order)
	for _, id := range g.order {
		r := gfa.Clone(g.records[id])
		c.records[id] = r
		c.ids[r] = id
	}
	cloneIndex(c.segments, g.segments)
	cloneIndex(c.paths, g.paths)
	return c
}

func cloneIndex(dst, src map[string]*entity) {
	for name, e := range src {
		ce := &entity{def: e.def, refs: make(map[ID]struct{}, len(e.refs))}
		for id := range e.refs {
			ce.refs[id] = struct{}{}
		}
		dst[name] = ce
	}
}

// Replace makes g adopt the contents of src. src must not be used
// afterwards. Rewrites prepare their result on a Clone and commit it with
// Replace so that a failure never leaves g half-modified.
func (g *Graph) Replace(src *Graph) {
	*g = *src
}
