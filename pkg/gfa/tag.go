package gfa

import (
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// Type is the one-letter type code of a tag value.
type Type byte

// Tag value types.
const (
	TypeChar   Type = 'A' // single printable character
	TypeInt    Type = 'i' // signed integer
	TypeFloat  Type = 'f' // floating point
	TypeString Type = 'Z' // printable text
	TypeJSON   Type = 'J' // JSON without tabs or newlines
	TypeBytes  Type = 'H' // hex-encoded bytes
	TypeArray  Type = 'B' // numeric array
)

// Valid reports whether t is one of the seven GFA tag types.
func (t Type) Valid() bool {
	switch t {
	case TypeChar, TypeInt, TypeFloat, TypeString, TypeJSON, TypeBytes, TypeArray:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

var (
	tagNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]$`)
	charRe    = regexp.MustCompile(`^[!-~]$`)
	intRe     = regexp.MustCompile(`^[-+]?[0-9]+$`)
	floatRe   = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)
	textRe    = regexp.MustCompile(`^[ !-~]*$`)
)

// Tag is a named, typed optional field. Raw holds the value text exactly as
// it appears on the line.
type Tag struct {
	Name string
	Type Type
	Raw  string
}

// ParseTag decodes a NAME:TYPE:VALUE field.
//
// At [LevelNone] only the triple is split. From [LevelDeferred] on, the name
// grammar, the type code and the shape of H and B payloads are checked and
// failures are FORMAT_ERROR. At [LevelStrict] the value is also checked
// against its type and a mismatch is TYPE_ERROR.
func ParseTag(s string, level Level) (Tag, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Tag{}, errors.New(errors.ErrCodeFormat, "tag %q: expected NAME:TYPE:VALUE", s)
	}
	typ, raw, ok := strings.Cut(rest, ":")
	if !ok || len(typ) != 1 {
		return Tag{}, errors.New(errors.ErrCodeFormat, "tag %q: expected NAME:TYPE:VALUE", s)
	}
	t := Tag{Name: name, Type: Type(typ[0]), Raw: raw}
	if !level.structural() {
		return t, nil
	}
	if err := t.checkShape(); err != nil {
		return Tag{}, err
	}
	if level.eager() {
		if err := t.checkValue(); err != nil {
			return Tag{}, err
		}
	}
	return t, nil
}

// String encodes the tag as NAME:TYPE:VALUE.
func (t Tag) String() string {
	return t.Name + ":" + string(t.Type) + ":" + t.Raw
}

// Validate runs every check on the tag regardless of validation level.
func (t Tag) Validate() error {
	if err := t.checkShape(); err != nil {
		return err
	}
	return t.checkValue()
}

func (t Tag) checkShape() error {
	if !tagNameRe.MatchString(t.Name) {
		return errors.New(errors.ErrCodeFormat, "tag %q: invalid name", t.String())
	}
	if !t.Type.Valid() {
		return errors.New(errors.ErrCodeFormat, "tag %q: unknown type %q", t.String(), string(t.Type))
	}
	switch t.Type {
	case TypeBytes:
		if len(t.Raw)%2 != 0 {
			return errors.New(errors.ErrCodeFormat, "tag %q: odd number of hex digits", t.String())
		}
		if _, err := hex.DecodeString(t.Raw); err != nil {
			return errors.Wrap(errors.ErrCodeFormat, err, "tag %q", t.String())
		}
	case TypeArray:
		if _, err := parseArray(t.Raw, false); err != nil {
			return errors.AttachLines(err, t.String())
		}
	}
	return nil
}

func (t Tag) checkValue() error {
	ok := true
	switch t.Type {
	case TypeChar:
		ok = charRe.MatchString(t.Raw)
	case TypeInt:
		if ok = intRe.MatchString(t.Raw); ok {
			_, err := strconv.ParseInt(t.Raw, 10, 64)
			ok = err == nil
		}
	case TypeFloat:
		if ok = floatRe.MatchString(t.Raw); ok {
			_, err := strconv.ParseFloat(t.Raw, 64)
			ok = err == nil
		}
	case TypeString:
		ok = textRe.MatchString(t.Raw)
	case TypeJSON:
		ok = textRe.MatchString(t.Raw) && json.Valid([]byte(t.Raw))
	case TypeArray:
		if _, err := parseArray(t.Raw, true); err != nil {
			return errors.AttachLines(err, t.String())
		}
	}
	if !ok {
		return errors.New(errors.ErrCodeType, "tag %s: value %q is not of type %s", t.Name, t.Raw, t.Type)
	}
	return nil
}

func (t Tag) mismatch(want Type) error {
	return errors.New(errors.ErrCodeType, "tag %s: has type %s, want %s", t.Name, t.Type, want)
}

// Char returns the value of an A tag.
func (t Tag) Char() (byte, error) {
	if t.Type != TypeChar {
		return 0, t.mismatch(TypeChar)
	}
	if !charRe.MatchString(t.Raw) {
		return 0, errors.New(errors.ErrCodeType, "tag %s: invalid character %q", t.Name, t.Raw)
	}
	return t.Raw[0], nil
}

// Int returns the value of an i tag.
func (t Tag) Int() (int64, error) {
	if t.Type != TypeInt {
		return 0, t.mismatch(TypeInt)
	}
	if !intRe.MatchString(t.Raw) {
		return 0, errors.New(errors.ErrCodeType, "tag %s: invalid integer %q", t.Name, t.Raw)
	}
	v, err := strconv.ParseInt(t.Raw, 10, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeType, err, "tag %s", t.Name)
	}
	return v, nil
}

// Float returns the value of an f tag.
func (t Tag) Float() (float64, error) {
	if t.Type != TypeFloat {
		return 0, t.mismatch(TypeFloat)
	}
	if !floatRe.MatchString(t.Raw) {
		return 0, errors.New(errors.ErrCodeType, "tag %s: invalid float %q", t.Name, t.Raw)
	}
	v, err := strconv.ParseFloat(t.Raw, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeType, err, "tag %s", t.Name)
	}
	return v, nil
}

// Number returns the value of an i or f tag as a float64.
func (t Tag) Number() (float64, error) {
	switch t.Type {
	case TypeInt:
		v, err := t.Int()
		return float64(v), err
	case TypeFloat:
		return t.Float()
	}
	return 0, errors.New(errors.ErrCodeType, "tag %s: has type %s, want i or f", t.Name, t.Type)
}

// Text returns the raw value text. It never fails; every tag has one.
func (t Tag) Text() string { return t.Raw }

// Bytes returns the decoded value of an H tag.
func (t Tag) Bytes() ([]byte, error) {
	if t.Type != TypeBytes {
		return nil, t.mismatch(TypeBytes)
	}
	b, err := hex.DecodeString(t.Raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "tag %s", t.Name)
	}
	return b, nil
}

// Array returns the decoded value of a B tag.
func (t Tag) Array() (Array, error) {
	if t.Type != TypeArray {
		return Array{}, t.mismatch(TypeArray)
	}
	return parseArray(t.Raw, true)
}

// DecodeJSON unmarshals the value of a J tag into v.
func (t Tag) DecodeJSON(v any) error {
	if t.Type != TypeJSON {
		return t.mismatch(TypeJSON)
	}
	if err := json.Unmarshal([]byte(t.Raw), v); err != nil {
		return errors.Wrap(errors.ErrCodeType, err, "tag %s", t.Name)
	}
	return nil
}

// NewChar returns an A tag.
func NewChar(name string, c byte) Tag {
	return Tag{Name: name, Type: TypeChar, Raw: string(c)}
}

// NewInt returns an i tag.
func NewInt(name string, v int64) Tag {
	return Tag{Name: name, Type: TypeInt, Raw: strconv.FormatInt(v, 10)}
}

// NewFloat returns an f tag using the shortest representation of v.
func NewFloat(name string, v float64) Tag {
	return Tag{Name: name, Type: TypeFloat, Raw: strconv.FormatFloat(v, 'g', -1, 64)}
}

// NewString returns a Z tag.
func NewString(name, s string) Tag {
	return Tag{Name: name, Type: TypeString, Raw: s}
}

// NewJSON returns a J tag holding the JSON encoding of v.
func NewJSON(name string, v any) (Tag, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Tag{}, errors.Wrap(errors.ErrCodeType, err, "tag %s", name)
	}
	return Tag{Name: name, Type: TypeJSON, Raw: string(b)}, nil
}

// NewBytes returns an H tag with upper-case hex digits.
func NewBytes(name string, b []byte) Tag {
	return Tag{Name: name, Type: TypeBytes, Raw: strings.ToUpper(hex.EncodeToString(b))}
}

// NewArray returns a B tag.
func NewArray(name string, a Array) Tag {
	return Tag{Name: name, Type: TypeArray, Raw: a.String()}
}
