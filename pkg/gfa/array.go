package gfa

import (
	"strconv"
	"strings"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// Array element subtypes of a B tag.
const (
	ArrayInt8    byte = 'c'
	ArrayUint8   byte = 'C'
	ArrayInt16   byte = 's'
	ArrayUint16  byte = 'S'
	ArrayInt32   byte = 'i'
	ArrayUint32  byte = 'I'
	ArrayFloat32 byte = 'f'
)

// Array is the decoded value of a B tag. Integer subtypes fill Ints,
// ArrayFloat32 fills Floats.
type Array struct {
	Subtype byte
	Ints    []int64
	Floats  []float64
}

// IsFloat reports whether the array holds floating point elements.
func (a Array) IsFloat() bool { return a.Subtype == ArrayFloat32 }

// Len returns the number of elements.
func (a Array) Len() int {
	if a.IsFloat() {
		return len(a.Floats)
	}
	return len(a.Ints)
}

// String encodes the array as it appears after "B:", e.g. "c,1,-2,3".
func (a Array) String() string {
	var b strings.Builder
	b.WriteByte(a.Subtype)
	if a.IsFloat() {
		for _, v := range a.Floats {
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 32))
		}
		return b.String()
	}
	for _, v := range a.Ints {
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// bitSize returns the element width and signedness for an integer subtype.
func bitSize(subtype byte) (bits int, signed, ok bool) {
	switch subtype {
	case ArrayInt8:
		return 8, true, true
	case ArrayUint8:
		return 8, false, true
	case ArrayInt16:
		return 16, true, true
	case ArrayUint16:
		return 16, false, true
	case ArrayInt32:
		return 32, true, true
	case ArrayUint32:
		return 32, false, true
	}
	return 0, false, false
}

// parseArray decodes "subtype,v1,v2,...". Malformed payloads are FORMAT_ERROR.
// With checkRange, elements outside the subtype's range are TYPE_ERROR;
// without it, only the token syntax is checked and the values are parsed as
// 64-bit numbers where possible.
func parseArray(raw string, checkRange bool) (Array, error) {
	if raw == "" {
		return Array{}, errors.New(errors.ErrCodeFormat, "array: missing element type")
	}
	head, rest, hasElems := strings.Cut(raw, ",")
	if len(head) != 1 {
		return Array{}, errors.New(errors.ErrCodeFormat, "array: invalid element type %q", head)
	}
	a := Array{Subtype: head[0]}
	bits, signed, isInt := bitSize(a.Subtype)
	if !isInt && !a.IsFloat() {
		return Array{}, errors.New(errors.ErrCodeFormat, "array: invalid element type %q", head)
	}
	if !hasElems {
		return a, nil
	}

	for _, tok := range strings.Split(rest, ",") {
		if a.IsFloat() {
			if !floatRe.MatchString(tok) {
				return Array{}, errors.New(errors.ErrCodeFormat, "array: invalid float element %q", tok)
			}
			bitSize := 64
			if checkRange {
				bitSize = 32
			}
			v, err := strconv.ParseFloat(tok, bitSize)
			if err != nil && checkRange {
				return Array{}, errors.Wrap(errors.ErrCodeType, err, "array: element %q out of range for %c", tok, a.Subtype)
			}
			a.Floats = append(a.Floats, v)
			continue
		}

		if !intRe.MatchString(tok) {
			return Array{}, errors.New(errors.ErrCodeFormat, "array: invalid integer element %q", tok)
		}
		if !checkRange {
			v, _ := strconv.ParseInt(tok, 10, 64)
			a.Ints = append(a.Ints, v)
			continue
		}
		if !signed && strings.HasPrefix(tok, "-") {
			return Array{}, errors.New(errors.ErrCodeType, "array: negative element %q in unsigned array %c", tok, a.Subtype)
		}
		var v int64
		var err error
		if signed {
			v, err = strconv.ParseInt(tok, 10, bits)
		} else {
			var u uint64
			u, err = strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, bits)
			v = int64(u)
		}
		if err != nil {
			return Array{}, errors.Wrap(errors.ErrCodeType, err, "array: element %q out of range for %c", tok, a.Subtype)
		}
		a.Ints = append(a.Ints, v)
	}
	return a, nil
}
