package gfa

import (
	"strings"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// Path is a named walk over oriented segments.
type Path struct {
	Name     string
	Steps    []Step
	Overlaps []Overlap // one per junction, or a single NoOverlap
	Tags
}

// Junction is a pair of consecutive path steps and the overlap between them.
// Each junction requires a matching link in the graph.
type Junction struct {
	From    Step
	To      Step
	Overlap Overlap
}

// NewPath returns a path. A nil overlaps list is stored as a single
// NoOverlap.
func NewPath(name string, steps []Step, overlaps []Overlap, tags ...Tag) *Path {
	if len(overlaps) == 0 {
		overlaps = []Overlap{NoOverlap}
	}
	return &Path{Name: name, Steps: steps, Overlaps: overlaps, Tags: tags}
}

func (p *Path) Kind() Kind { return KindPath }

func (p *Path) String() string {
	steps := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = s.String()
	}
	overlaps := make([]string, len(p.Overlaps))
	for i, o := range p.Overlaps {
		overlaps[i] = o.String()
	}
	if len(overlaps) == 0 {
		overlaps = []string{string(NoOverlap)}
	}
	return joinFields(KindPath, []string{
		p.Name, strings.Join(steps, ","), strings.Join(overlaps, ","),
	}, p.Tags)
}

// SegmentNames returns the segment name of every step, repeats included.
func (p *Path) SegmentNames() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name
	}
	return names
}

// OverlapAt returns the overlap of junction i (between step i and i+1), or
// NoOverlap when overlaps are not given.
func (p *Path) OverlapAt(i int) Overlap {
	if len(p.Overlaps) == len(p.Steps)-1 || len(p.Overlaps) == len(p.Steps) {
		if i >= 0 && i < len(p.Overlaps) {
			return p.Overlaps[i]
		}
	}
	return NoOverlap
}

// HasOverlaps reports whether per-junction overlaps are given.
func (p *Path) HasOverlaps() bool {
	return !(len(p.Overlaps) == 1 && p.Overlaps[0].IsPlaceholder()) && len(p.Overlaps) > 0
}

// ImpliedLinks returns the junctions of consecutive steps.
func (p *Path) ImpliedLinks() []Junction {
	if len(p.Steps) < 2 {
		return nil
	}
	out := make([]Junction, 0, len(p.Steps)-1)
	for i := 0; i+1 < len(p.Steps); i++ {
		out = append(out, Junction{From: p.Steps[i], To: p.Steps[i+1], Overlap: p.OverlapAt(i)})
	}
	return out
}

func (p *Path) check() error {
	if !ValidName(p.Name) {
		return errors.New(errors.ErrCodeFormat, "path: invalid name %q", p.Name)
	}
	if len(p.Steps) == 0 {
		return errors.New(errors.ErrCodeFormat, "path %s: no steps", p.Name)
	}
	for _, s := range p.Steps {
		if !ValidName(s.Name) {
			return errors.New(errors.ErrCodeFormat, "path %s: invalid segment name %q", p.Name, s.Name)
		}
		if !s.Orient.Valid() {
			return errors.New(errors.ErrCodeFormat, "path %s: invalid orientation in step %q", p.Name, s.String())
		}
	}
	for _, o := range p.Overlaps {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	if p.HasOverlaps() && len(p.Overlaps) != len(p.Steps)-1 && len(p.Overlaps) != len(p.Steps) {
		return errors.New(errors.ErrCodeFormat, "path %s: %d overlaps for %d steps", p.Name, len(p.Overlaps), len(p.Steps))
	}
	return nil
}

func parsePath(fields []string, level Level) (*Path, error) {
	if len(fields) < 3 {
		return nil, errors.New(errors.ErrCodeFormat, "path: expected 3 positional fields, got %d", len(fields))
	}
	var steps []Step
	for _, tok := range strings.Split(fields[1], ",") {
		s, err := parseStep(tok, level)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	var overlaps []Overlap
	for _, tok := range strings.Split(fields[2], ",") {
		o, err := ParseOverlap(tok, level)
		if err != nil {
			return nil, err
		}
		overlaps = append(overlaps, o)
	}
	tags, err := parseTags(fields[3:], level)
	if err != nil {
		return nil, err
	}
	p := &Path{Name: fields[0], Steps: steps, Overlaps: overlaps, Tags: tags}
	if level.eager() {
		if err := p.check(); err != nil {
			return nil, err
		}
	}
	return p, nil
}
