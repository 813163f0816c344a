package gfa

import (
	"bytes"
	"testing"

	"github.com/matzehuels/gfakit/pkg/errors"
)

func TestParseTag_RoundTrip(t *testing.T) {
	inputs := []string{
		"xx:A:c",
		"LN:i:+0012",
		"KC:i:-5",
		"rc:f:1.50",
		"ab:f:.5e+3",
		"zz:Z:hello world",
		"zz:Z:",
		"jj:J:{\"a\":[1,2]}",
		"hh:H:0aFF",
		"bb:B:c,1,-2,+3",
		"bb:B:f,1.0,2e3",
		"bb:B:I",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			tag, err := ParseTag(in, LevelStrict)
			if err != nil {
				t.Fatalf("ParseTag(%q) error: %v", in, err)
			}
			if got := tag.String(); got != in {
				t.Errorf("String() = %q, want %q", got, in)
			}
		})
	}
}

func TestParseTag_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		level Level
		code  errors.Code
	}{
		{"no colons", "LN", LevelNone, errors.ErrCodeFormat},
		{"one colon", "LN:i", LevelNone, errors.ErrCodeFormat},
		{"long type", "LN:ii:1", LevelNone, errors.ErrCodeFormat},
		{"bad name", "1N:i:1", LevelDeferred, errors.ErrCodeFormat},
		{"name too long", "LNN:i:1", LevelDeferred, errors.ErrCodeFormat},
		{"unknown type", "LN:q:1", LevelDeferred, errors.ErrCodeFormat},
		{"odd hex", "hh:H:ABC", LevelDeferred, errors.ErrCodeFormat},
		{"non hex", "hh:H:GG", LevelDeferred, errors.ErrCodeFormat},
		{"array no subtype", "bb:B:", LevelDeferred, errors.ErrCodeFormat},
		{"array bad subtype", "bb:B:x,1", LevelDeferred, errors.ErrCodeFormat},
		{"array bad token", "bb:B:c,1,a", LevelDeferred, errors.ErrCodeFormat},
		{"array empty token", "bb:B:c,1,,2", LevelDeferred, errors.ErrCodeFormat},
		{"int garbage", "LN:i:12x", LevelStrict, errors.ErrCodeType},
		{"int overflow", "LN:i:99999999999999999999", LevelStrict, errors.ErrCodeType},
		{"float garbage", "ff:f:1.0.0", LevelStrict, errors.ErrCodeType},
		{"char too long", "cc:A:ab", LevelStrict, errors.ErrCodeType},
		{"bad json", "jj:J:{", LevelStrict, errors.ErrCodeType},
		{"array overflow", "bb:B:c,128", LevelStrict, errors.ErrCodeType},
		{"array unsigned negative", "bb:B:C,-1", LevelStrict, errors.ErrCodeType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTag(tt.in, tt.level)
			if !errors.Is(err, tt.code) {
				t.Errorf("ParseTag(%q, %v) error = %v, want code %s", tt.in, tt.level, err, tt.code)
			}
		})
	}
}

func TestParseTag_LevelGating(t *testing.T) {
	// Value errors are only reported eagerly at LevelStrict.
	for _, in := range []string{"LN:i:12x", "bb:B:c,128", "cc:A:ab"} {
		if _, err := ParseTag(in, LevelDeferred); err != nil {
			t.Errorf("ParseTag(%q, LevelDeferred) error = %v, want nil", in, err)
		}
	}
	// LevelNone does not even check the type code.
	tag, err := ParseTag("LN:q:whatever", LevelNone)
	if err != nil {
		t.Fatalf("ParseTag at LevelNone error = %v", err)
	}
	if tag.Text() != "whatever" {
		t.Errorf("Text() = %q, want %q", tag.Text(), "whatever")
	}
	if err := tag.Validate(); !errors.Is(err, errors.ErrCodeFormat) {
		t.Errorf("Validate() error = %v, want FORMAT_ERROR", err)
	}
}

func TestTag_Accessors(t *testing.T) {
	mustTag := func(s string) Tag {
		tag, err := ParseTag(s, LevelStrict)
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", s, err)
		}
		return tag
	}

	if v, err := mustTag("LN:i:+42").Int(); err != nil || v != 42 {
		t.Errorf("Int() = %d, %v; want 42", v, err)
	}
	if v, err := mustTag("rc:f:2.5").Float(); err != nil || v != 2.5 {
		t.Errorf("Float() = %v, %v; want 2.5", v, err)
	}
	if v, err := mustTag("RC:i:7").Number(); err != nil || v != 7 {
		t.Errorf("Number() = %v, %v; want 7", v, err)
	}
	if c, err := mustTag("xx:A:q").Char(); err != nil || c != 'q' {
		t.Errorf("Char() = %c, %v; want q", c, err)
	}
	if b, err := mustTag("hh:H:0AFF").Bytes(); err != nil || !bytes.Equal(b, []byte{0x0a, 0xff}) {
		t.Errorf("Bytes() = %x, %v; want 0aff", b, err)
	}

	a, err := mustTag("bb:B:s,-1,2,3").Array()
	if err != nil {
		t.Fatalf("Array() error: %v", err)
	}
	if a.Subtype != ArrayInt16 || a.Len() != 3 || a.Ints[0] != -1 {
		t.Errorf("Array() = %+v", a)
	}

	var v map[string]int
	if err := mustTag(`jj:J:{"x":1}`).DecodeJSON(&v); err != nil || v["x"] != 1 {
		t.Errorf("DecodeJSON() = %v, %v", v, err)
	}

	if _, err := mustTag("zz:Z:text").Int(); !errors.Is(err, errors.ErrCodeType) {
		t.Errorf("Int() on Z tag error = %v, want TYPE_ERROR", err)
	}
}

func TestTag_Constructors(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{NewChar("xx", 'A'), "xx:A:A"},
		{NewInt("LN", -3), "LN:i:-3"},
		{NewFloat("rc", 0.25), "rc:f:0.25"},
		{NewString("zz", "a b"), "zz:Z:a b"},
		{NewBytes("hh", []byte{0x1f, 0xa0}), "hh:H:1FA0"},
		{NewArray("bb", Array{Subtype: ArrayUint8, Ints: []int64{1, 2}}), "bb:B:C,1,2"},
		{NewArray("bb", Array{Subtype: ArrayFloat32, Floats: []float64{0.5}}), "bb:B:f,0.5"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if err := tt.tag.Validate(); err != nil {
			t.Errorf("Validate(%q) error: %v", tt.want, err)
		}
	}

	j, err := NewJSON("jj", map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("NewJSON() error: %v", err)
	}
	if j.String() != `jj:J:{"a":1}` {
		t.Errorf("NewJSON().String() = %q", j.String())
	}
}

func TestTags_SetDelete(t *testing.T) {
	var ts Tags
	ts.SetTag(NewInt("LN", 1))
	ts.SetTag(NewString("zz", "x"))
	ts.SetTag(NewInt("LN", 2))

	if len(ts) != 2 {
		t.Fatalf("len = %d, want 2", len(ts))
	}
	if got, _ := ts.Tag("LN"); got.Raw != "2" {
		t.Errorf("LN = %q, want 2", got.Raw)
	}
	if names := ts.TagNames(); names[0] != "LN" || names[1] != "zz" {
		t.Errorf("TagNames() = %v, want [LN zz]", names)
	}
	if !ts.DeleteTag("LN") || ts.HasTag("LN") {
		t.Error("DeleteTag(LN) did not remove the tag")
	}
	if ts.DeleteTag("LN") {
		t.Error("DeleteTag(LN) twice reported a removal")
	}
}
