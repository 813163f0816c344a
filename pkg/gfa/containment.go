package gfa

import (
	"strconv"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// Position is the offset of a contained segment, kept as written so that
// "05" or "+5" serialize unchanged.
type Position string

// NewPosition returns the canonical text of n.
func NewPosition(n int) Position { return Position(strconv.Itoa(n)) }

// Int returns the position as an integer.
func (p Position) Int() (int, error) {
	n, err := strconv.Atoi(string(p))
	if err != nil {
		return 0, errors.New(errors.ErrCodeFormat, "invalid position %q", string(p))
	}
	return n, nil
}

func (p Position) String() string { return string(p) }

// Containment states that the contained segment lies within the container
// starting at Pos.
type Containment struct {
	Container       string
	ContainerOrient Orientation
	Contained       string
	ContainedOrient Orientation
	Pos             Position
	Overlap         Overlap
	Tags
}

func (c *Containment) Kind() Kind { return KindContainment }

func (c *Containment) String() string {
	return joinFields(KindContainment, []string{
		c.Container, c.ContainerOrient.String(),
		c.Contained, c.ContainedOrient.String(),
		c.Pos.String(), c.Overlap.String(),
	}, c.Tags)
}

// ContainerStep returns the oriented container segment.
func (c *Containment) ContainerStep() Step {
	return Step{Name: c.Container, Orient: c.ContainerOrient}
}

// ContainedStep returns the oriented contained segment.
func (c *Containment) ContainedStep() Step {
	return Step{Name: c.Contained, Orient: c.ContainedOrient}
}

func (c *Containment) check() error {
	if !ValidName(c.Container) || !ValidName(c.Contained) {
		return errors.New(errors.ErrCodeFormat, "containment %s %s: invalid segment name", c.Container, c.Contained)
	}
	if !c.ContainerOrient.Valid() || !c.ContainedOrient.Valid() {
		return errors.New(errors.ErrCodeFormat, "containment %s %s: invalid orientation %q %q",
			c.Container, c.Contained, c.ContainerOrient, c.ContainedOrient)
	}
	pos, err := c.Pos.Int()
	if err != nil {
		return errors.Wrap(errors.ErrCodeFormat, err, "containment %s %s", c.Container, c.Contained)
	}
	if pos < 0 {
		return errors.New(errors.ErrCodeFormat, "containment %s %s: negative position %d", c.Container, c.Contained, pos)
	}
	return c.Overlap.Validate()
}

func parseContainment(fields []string, level Level) (*Containment, error) {
	if len(fields) < 6 {
		return nil, errors.New(errors.ErrCodeFormat, "containment: expected 6 positional fields, got %d", len(fields))
	}
	containerOrient, err := parseOrientation(fields[1], level)
	if err != nil {
		return nil, err
	}
	containedOrient, err := parseOrientation(fields[3], level)
	if err != nil {
		return nil, err
	}
	pos := Position(fields[4])
	if level.structural() {
		if _, err := pos.Int(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFormat, err, "containment")
		}
	}
	overlap, err := ParseOverlap(fields[5], level)
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(fields[6:], level)
	if err != nil {
		return nil, err
	}
	c := &Containment{
		Container:       fields[0],
		ContainerOrient: containerOrient,
		Contained:       fields[2],
		ContainedOrient: containedOrient,
		Pos:             pos,
		Overlap:         overlap,
		Tags:            tags,
	}
	if level.eager() {
		if err := c.check(); err != nil {
			return nil, err
		}
	}
	return c, nil
}
