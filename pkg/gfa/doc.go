// Package gfa provides the record model and tag codec for GFA 1 (Graphical
// Fragment Assembly) text.
//
// # Overview
//
// A GFA file is a sequence of tab-separated lines. The first field of each
// line selects the record kind:
//
//	H  header        (tags only)
//	S  segment       name, sequence or *
//	L  link          from, orient, to, orient, overlap or *
//	C  containment   container, orient, contained, orient, pos, overlap or *
//	P  path          name, steps (1+,2-), overlaps or *
//	#  comment       free text
//
// Positional fields are followed by optional tags of the form NAME:TYPE:VALUE.
//
// # Records
//
// [Record] is a closed sum type over [*Header], [*Segment], [*Link],
// [*Containment], [*Path] and [*Comment]. Use a type switch to dispatch:
//
//	switch r := rec.(type) {
//	case *gfa.Segment:
//	    fmt.Println(r.Name, r.Length())
//	case *gfa.Link:
//	    fmt.Println(r.FromStep(), r.ToStep())
//	}
//
// Every record serializes back to its canonical line with String. For a line
// that was parsed and not modified, String returns the original text.
//
// # Tags
//
// A [Tag] keeps its value as the raw text found on the line, so encoding is
// the exact inverse of decoding. Typed accessors ([Tag.Int], [Tag.Float],
// [Tag.Array], ...) decode on demand. Constructors such as [NewInt] build
// tags with canonical value text.
//
// # Validation Levels
//
// [Level] controls how much checking happens while parsing:
//
//   - [LevelNone]: split fields only
//   - [LevelDeferred]: structural checks now, value checks later via [Check]
//   - [LevelStrict]: all checks while parsing
//
// Errors are *errors.Error values from the gfakit errors package with code
// FORMAT_ERROR or TYPE_ERROR.
package gfa
