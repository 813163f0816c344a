package gfa

import (
	"fmt"
	"strings"
)

// Kind is the record discriminator, the first character of a line.
type Kind byte

// Record kinds.
const (
	KindHeader      Kind = 'H'
	KindSegment     Kind = 'S'
	KindLink        Kind = 'L'
	KindContainment Kind = 'C'
	KindPath        Kind = 'P'
	KindComment     Kind = '#'
)

// Kinds lists all record kinds in serialization priority order.
var Kinds = []Kind{KindHeader, KindSegment, KindLink, KindContainment, KindPath, KindComment}

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSegment:
		return "segment"
	case KindLink:
		return "link"
	case KindContainment:
		return "containment"
	case KindPath:
		return "path"
	case KindComment:
		return "comment"
	}
	return fmt.Sprintf("kind(%q)", byte(k))
}

// Record is one GFA line. The set of implementations is closed:
// [*Header], [*Segment], [*Link], [*Containment], [*Path], [*Comment].
type Record interface {
	// Kind returns the record discriminator.
	Kind() Kind
	// String returns the canonical line without the trailing newline.
	String() string

	check() error
}

// TagsOf returns a pointer to the tags of r, or nil for comments.
func TagsOf(r Record) *Tags {
	switch r := r.(type) {
	case *Header:
		return &r.Tags
	case *Segment:
		return &r.Tags
	case *Link:
		return &r.Tags
	case *Containment:
		return &r.Tags
	case *Path:
		return &r.Tags
	}
	return nil
}

// References returns the distinct segment names mentioned by r, in order of
// first mention. Segments, headers and comments reference nothing.
func References(r Record) []string {
	var names []string
	switch r := r.(type) {
	case *Link:
		names = []string{r.From, r.To}
	case *Containment:
		names = []string{r.Container, r.Contained}
	case *Path:
		names = r.SegmentNames()
	default:
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Check runs every content check on r: positional field patterns and full
// tag type checks. It is what a strict parse would have enforced.
func Check(r Record) error {
	if err := r.check(); err != nil {
		return err
	}
	if ts := TagsOf(r); ts != nil {
		if err := ts.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of r.
func Clone(r Record) Record {
	switch r := r.(type) {
	case *Header:
		return &Header{Tags: r.Tags.clone()}
	case *Segment:
		c := *r
		c.Tags = r.Tags.clone()
		return &c
	case *Link:
		c := *r
		c.Tags = r.Tags.clone()
		return &c
	case *Containment:
		c := *r
		c.Tags = r.Tags.clone()
		return &c
	case *Path:
		c := *r
		c.Steps = append([]Step(nil), r.Steps...)
		c.Overlaps = append([]Overlap(nil), r.Overlaps...)
		c.Tags = r.Tags.clone()
		return &c
	case *Comment:
		c := *r
		return &c
	}
	panic(fmt.Sprintf("gfa: unknown record type %T", r))
}

func joinFields(kind Kind, positional []string, tags Tags) string {
	var b strings.Builder
	b.WriteByte(byte(kind))
	for _, f := range positional {
		b.WriteByte('\t')
		b.WriteString(f)
	}
	for _, t := range tags {
		b.WriteByte('\t')
		b.WriteString(t.String())
	}
	return b.String()
}
