package gfa

import (
	"github.com/matzehuels/gfakit/pkg/errors"
)

// Segment is a named sequence fragment, a vertex of the graph.
type Segment struct {
	Name     string
	Sequence string // Placeholder when omitted
	Tags
}

// NewSegment returns a segment. An empty sequence is stored as Placeholder.
func NewSegment(name, sequence string, tags ...Tag) *Segment {
	if sequence == "" {
		sequence = Placeholder
	}
	return &Segment{Name: name, Sequence: sequence, Tags: tags}
}

func (s *Segment) Kind() Kind { return KindSegment }

func (s *Segment) String() string {
	return joinFields(KindSegment, []string{s.Name, s.Sequence}, s.Tags)
}

// HasSequence reports whether the sequence is given rather than a
// placeholder.
func (s *Segment) HasSequence() bool { return s.Sequence != Placeholder && s.Sequence != "" }

// HasLength reports whether a length is known, from the LN tag or the
// sequence.
func (s *Segment) HasLength() bool {
	if s.HasSequence() {
		return true
	}
	_, err := s.lengthTag()
	return err == nil
}

// Length returns the LN tag when present and valid, otherwise the sequence
// length. It is 0 when neither is known.
func (s *Segment) Length() int {
	if ln, err := s.lengthTag(); err == nil {
		return int(ln)
	}
	if s.HasSequence() {
		return len(s.Sequence)
	}
	return 0
}

func (s *Segment) lengthTag() (int64, error) {
	t, ok := s.Tag("LN")
	if !ok {
		return 0, errors.New(errors.ErrCodeLineMissing, "segment %s: no LN tag", s.Name)
	}
	return t.Int()
}

func (s *Segment) check() error {
	if !ValidName(s.Name) {
		return errors.New(errors.ErrCodeFormat, "segment: invalid name %q", s.Name)
	}
	if !sequenceRe.MatchString(s.Sequence) {
		return errors.New(errors.ErrCodeFormat, "segment %s: invalid sequence", s.Name)
	}
	if t, ok := s.Tag("LN"); ok && s.HasSequence() {
		ln, err := t.Int()
		if err != nil {
			return err
		}
		if int(ln) != len(s.Sequence) {
			return errors.New(errors.ErrCodeFormat, "segment %s: LN is %d but sequence has length %d", s.Name, ln, len(s.Sequence))
		}
	}
	return nil
}

func parseSegment(fields []string, level Level) (*Segment, error) {
	if len(fields) < 2 {
		return nil, errors.New(errors.ErrCodeFormat, "segment: expected 2 positional fields, got %d", len(fields))
	}
	tags, err := parseTags(fields[2:], level)
	if err != nil {
		return nil, err
	}
	s := &Segment{Name: fields[0], Sequence: fields[1], Tags: tags}
	if level.eager() {
		if err := s.check(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
