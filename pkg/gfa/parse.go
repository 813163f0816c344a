package gfa

import (
	"strings"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// ParseLine parses one GFA line into a record. A trailing newline (and
// carriage return) is ignored. Lines starting with '#' are comments; other
// lines are split on tabs and dispatched on their first field.
//
// Errors are FORMAT_ERROR or TYPE_ERROR and carry the offending line (see
// errors.LinesOf).
func ParseLine(line string, level Level) (Record, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	r, err := parseLine(line, level)
	if err != nil {
		return nil, errors.AttachLines(err, line)
	}
	return r, nil
}

func parseLine(line string, level Level) (Record, error) {
	if line == "" {
		return nil, errors.New(errors.ErrCodeFormat, "empty line")
	}
	if line[0] == byte(KindComment) {
		return &Comment{Text: line[1:]}, nil
	}

	fields := strings.Split(line, "\t")
	if len(fields[0]) != 1 {
		return nil, errors.New(errors.ErrCodeFormat, "unknown record type %q", fields[0])
	}
	rest := fields[1:]
	switch Kind(fields[0][0]) {
	case KindHeader:
		return parseHeader(rest, level)
	case KindSegment:
		return parseSegment(rest, level)
	case KindLink:
		return parseLink(rest, level)
	case KindContainment:
		return parseContainment(rest, level)
	case KindPath:
		return parsePath(rest, level)
	}
	return nil, errors.New(errors.ErrCodeFormat, "unknown record type %q", fields[0])
}

// MustParseLine is like ParseLine at LevelStrict but panics on error. It is
// meant for tests and package-level literals.
func MustParseLine(line string) Record {
	r, err := ParseLine(line, LevelStrict)
	if err != nil {
		panic(err)
	}
	return r
}
