package gfa

import (
	"github.com/matzehuels/gfakit/pkg/errors"
)

// Link is an overlap-carrying adjacency from one oriented segment to
// another, an edge of the graph. Several links may join the same pair of
// segment ends.
type Link struct {
	From       string
	FromOrient Orientation
	To         string
	ToOrient   Orientation
	Overlap    Overlap
	Tags
}

// NewLink returns a link from one step to another.
func NewLink(from, to Step, overlap Overlap, tags ...Tag) *Link {
	if overlap == "" {
		overlap = NoOverlap
	}
	return &Link{
		From:       from.Name,
		FromOrient: from.Orient,
		To:         to.Name,
		ToOrient:   to.Orient,
		Overlap:    overlap,
		Tags:       tags,
	}
}

func (l *Link) Kind() Kind { return KindLink }

func (l *Link) String() string {
	return joinFields(KindLink, []string{
		l.From, l.FromOrient.String(), l.To, l.ToOrient.String(), l.Overlap.String(),
	}, l.Tags)
}

// FromStep returns the oriented source segment.
func (l *Link) FromStep() Step { return Step{Name: l.From, Orient: l.FromOrient} }

// ToStep returns the oriented target segment.
func (l *Link) ToStep() Step { return Step{Name: l.To, Orient: l.ToOrient} }

// Complement returns the same adjacency read on the other strand:
// "A + B -" becomes "B + A -". Tags are copied.
func (l *Link) Complement() *Link {
	return &Link{
		From:       l.To,
		FromOrient: l.ToOrient.Invert(),
		To:         l.From,
		ToOrient:   l.FromOrient.Invert(),
		Overlap:    l.Overlap.Complement(),
		Tags:       l.Tags.clone(),
	}
}

// Connects reports whether l joins from to to, directly or as its
// complement.
func (l *Link) Connects(from, to Step) bool {
	if l.FromStep() == from && l.ToStep() == to {
		return true
	}
	return l.FromStep() == to.Invert() && l.ToStep() == from.Invert()
}

// IsSelf reports whether both ends of l are on the same segment.
func (l *Link) IsSelf() bool { return l.From == l.To }

// Other returns the segment at the opposite end from name.
func (l *Link) Other(name string) string {
	if l.From == name {
		return l.To
	}
	return l.From
}

func (l *Link) check() error {
	if !ValidName(l.From) || !ValidName(l.To) {
		return errors.New(errors.ErrCodeFormat, "link %s %s: invalid segment name", l.From, l.To)
	}
	if !l.FromOrient.Valid() || !l.ToOrient.Valid() {
		return errors.New(errors.ErrCodeFormat, "link %s %s: invalid orientation %q %q",
			l.From, l.To, l.FromOrient, l.ToOrient)
	}
	return l.Overlap.Validate()
}

func parseLink(fields []string, level Level) (*Link, error) {
	if len(fields) < 5 {
		return nil, errors.New(errors.ErrCodeFormat, "link: expected 5 positional fields, got %d", len(fields))
	}
	fromOrient, err := parseOrientation(fields[1], level)
	if err != nil {
		return nil, err
	}
	toOrient, err := parseOrientation(fields[3], level)
	if err != nil {
		return nil, err
	}
	overlap, err := ParseOverlap(fields[4], level)
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(fields[5:], level)
	if err != nil {
		return nil, err
	}
	l := &Link{
		From:       fields[0],
		FromOrient: fromOrient,
		To:         fields[2],
		ToOrient:   toOrient,
		Overlap:    overlap,
		Tags:       tags,
	}
	if level.eager() {
		if err := l.check(); err != nil {
			return nil, err
		}
	}
	return l, nil
}
