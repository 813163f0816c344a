package gfa

import "github.com/matzehuels/gfakit/pkg/errors"

// Orientation is the strand of a segment reference. Lines read at
// LevelNone keep whatever text the field held; [Orientation.Valid] tells the
// two strands apart from such text.
type Orientation string

const (
	Forward Orientation = "+"
	Reverse Orientation = "-"
)

// ParseOrientation parses "+" or "-".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return "", errors.New(errors.ErrCodeFormat, "invalid orientation %q", s)
}

func parseOrientation(s string, level Level) (Orientation, error) {
	if !level.structural() {
		return Orientation(s), nil
	}
	return ParseOrientation(s)
}

// Valid reports whether o is Forward or Reverse.
func (o Orientation) Valid() bool { return o == Forward || o == Reverse }

// Invert returns the opposite orientation. Unknown text is returned as is.
func (o Orientation) Invert() Orientation {
	switch o {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	}
	return o
}

func (o Orientation) String() string { return string(o) }

// Step is an oriented segment reference, written "name+" or "name-" in
// paths.
type Step struct {
	Name   string
	Orient Orientation
}

// Fwd returns the forward step for name.
func Fwd(name string) Step { return Step{Name: name, Orient: Forward} }

// Rev returns the reverse step for name.
func Rev(name string) Step { return Step{Name: name, Orient: Reverse} }

// Invert returns the same segment in the opposite orientation.
func (s Step) Invert() Step { return Step{Name: s.Name, Orient: s.Orient.Invert()} }

func (s Step) String() string { return s.Name + string(s.Orient) }

// ParseStep parses "name+" or "name-".
func ParseStep(s string) (Step, error) {
	if len(s) < 2 {
		return Step{}, errors.New(errors.ErrCodeFormat, "invalid path step %q", s)
	}
	o, err := ParseOrientation(s[len(s)-1:])
	if err != nil {
		return Step{}, errors.Wrap(errors.ErrCodeFormat, err, "path step %q", s)
	}
	return Step{Name: s[:len(s)-1], Orient: o}, nil
}

func parseStep(s string, level Level) (Step, error) {
	if level.structural() {
		return ParseStep(s)
	}
	if s == "" {
		return Step{}, nil
	}
	return Step{Name: s[:len(s)-1], Orient: Orientation(s[len(s)-1:])}, nil
}
