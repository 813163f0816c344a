package gfa

import (
	"slices"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// Tags is the ordered list of optional fields of a record. Order is kept so
// that a parsed line serializes back unchanged.
//
// Records embed Tags, so its methods are available directly on them:
//
//	if ln, ok := seg.Tag("LN"); ok { ... }
type Tags []Tag

// Tag returns the first tag with the given name.
func (ts Tags) Tag(name string) (Tag, bool) {
	for _, t := range ts {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// HasTag reports whether a tag with the given name is present.
func (ts Tags) HasTag(name string) bool {
	_, ok := ts.Tag(name)
	return ok
}

// TagNames returns tag names in field order.
func (ts Tags) TagNames() []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

// SetTag replaces the tag with the same name in place, or appends t.
func (ts *Tags) SetTag(t Tag) {
	for i := range *ts {
		if (*ts)[i].Name == t.Name {
			(*ts)[i] = t
			return
		}
	}
	*ts = append(*ts, t)
}

// DeleteTag removes the tag with the given name and reports whether one was
// present.
func (ts *Tags) DeleteTag(name string) bool {
	n := len(*ts)
	*ts = slices.DeleteFunc(*ts, func(t Tag) bool { return t.Name == name })
	return len(*ts) != n
}

func (ts Tags) clone() Tags {
	if ts == nil {
		return nil
	}
	return slices.Clone(ts)
}

func (ts Tags) validate() error {
	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return ts.checkUnique()
}

func (ts Tags) checkUnique() error {
	seen := make(map[string]bool, len(ts))
	for _, t := range ts {
		if seen[t.Name] {
			return errors.New(errors.ErrCodeFormat, "duplicate tag %s", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func parseTags(fields []string, level Level) (Tags, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	ts := make(Tags, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTag(f, level)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if level.structural() {
		if err := ts.checkUnique(); err != nil {
			return nil, err
		}
	}
	return ts, nil
}
