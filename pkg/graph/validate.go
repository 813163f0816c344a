package graph

import (
	"strings"
	"time"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
)

// Validate runs the integrity sweep over the whole graph.
//
// At level 1 and above it first re-checks the content of every record (the
// checks a level 1 parse deferred). It then fails with LINE_MISSING if any
// referenced segment is still virtual, naming the segments and attaching
// every line that refers to them, and finally if a path has two consecutive
// steps with no link joining them in either reading direction.
//
// Validate has no side effect on the graph.
func (g *Graph) Validate() error {
	start := time.Now()
	err := g.validate()
	g.obs.OnValidate(len(g.order), time.Since(start), err)
	return err
}

func (g *Graph) validate() error {
	if g.options.Level >= gfa.LevelDeferred {
		for _, id := range g.order {
			r := g.records[id]
			if err := gfa.Check(r); err != nil {
				return errors.AttachLines(err, r.String())
			}
		}
	}
	if err := g.checkVirtual(); err != nil {
		return err
	}
	return g.checkImpliedLinks()
}

func (g *Graph) checkVirtual() error {
	var missing, lines []string
	reported := make(map[string]bool)
	for _, id := range g.order {
		r := g.records[id]
		dangling := false
		for _, name := range gfa.References(r) {
			if e := g.segments[name]; e != nil && e.def != 0 {
				continue
			}
			dangling = true
			if !reported[name] {
				reported[name] = true
				missing = append(missing, name)
			}
		}
		if dangling {
			lines = append(lines, r.String())
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return errors.New(errors.ErrCodeLineMissing, "segment %s is referenced but not defined", missing[0]).
			WithLines(lines...)
	default:
		return errors.New(errors.ErrCodeLineMissing, "segments %s are referenced but not defined",
			strings.Join(missing, ", ")).WithLines(lines...)
	}
}

type junction struct {
	from, to gfa.Step
}

func (g *Graph) checkImpliedLinks() error {
	paths := g.Paths()
	if len(paths) == 0 {
		return nil
	}

	known := make(map[junction]struct{})
	for _, l := range g.Links() {
		known[junction{l.FromStep(), l.ToStep()}] = struct{}{}
		known[junction{l.ToStep().Invert(), l.FromStep().Invert()}] = struct{}{}
	}

	for _, p := range paths {
		for _, j := range p.ImpliedLinks() {
			if _, ok := known[junction{j.From, j.To}]; !ok {
				return errors.New(errors.ErrCodeLineMissing, "path %s: no link joins %s to %s", p.Name, j.From, j.To).
					WithLines(p.String())
			}
		}
	}
	return nil
}
