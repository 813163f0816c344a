package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

const sample = "H\tVN:Z:1.0\n" +
	"S\t1\tACGT\tRC:i:12\n" +
	"S\t2\t*\tLN:i:7\n" +
	"L\t1\t+\t2\t-\t2M\n" +
	"C\t1\t+\t3\t+\t1\t*\n" +
	"P\tp\t1+,2-\t2M\n"

func lenient() graph.Options { return graph.Options{Level: gfa.LevelNone} }

func TestReadGFA(t *testing.T) {
	g, err := ReadGFA(strings.NewReader(sample), lenient())
	if err != nil {
		t.Fatalf("ReadGFA() error: %v", err)
	}
	if got := g.String(); got != sample {
		t.Errorf("String() =\n%s\nwant\n%s", got, sample)
	}
}

func TestReadGFA_CRLFAndBlankLines(t *testing.T) {
	in := "S\t1\t*\r\n\r\nS\t2\t*\r\n"
	g, err := ReadGFA(strings.NewReader(in), graph.Options{Level: gfa.LevelStrict})
	if err != nil {
		t.Fatalf("ReadGFA() error: %v", err)
	}
	if got := g.String(); got != "S\t1\t*\nS\t2\t*\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestReadGFA_LineError(t *testing.T) {
	in := "S\t1\t*\nS\t1\t*\n"
	_, err := ReadGFA(strings.NewReader(in), graph.Options{Level: gfa.LevelStrict})
	if !errors.Is(err, errors.ErrCodeNotUnique) {
		t.Fatalf("ReadGFA() error = %v, want NOT_UNIQUE", err)
	}
	if !strings.Contains(err.Error(), "line 2:") {
		t.Errorf("error %q does not name line 2", err)
	}
}

func TestImportGFA_NotFound(t *testing.T) {
	_, err := ImportGFA(filepath.Join(t.TempDir(), "missing.gfa"), lenient())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportGFA() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportImportGFA(t *testing.T) {
	g, err := ReadGFA(strings.NewReader(sample), lenient())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"graph.gfa", "graph.gfa.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := ExportGFA(g, path); err != nil {
				t.Fatalf("ExportGFA() error: %v", err)
			}
			back, err := ImportGFA(path, lenient())
			if err != nil {
				t.Fatalf("ImportGFA() error: %v", err)
			}
			if !back.StrictEqual(g) {
				t.Errorf("re-imported graph differs:\n%s", back)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	g, err := ReadGFA(strings.NewReader(sample), lenient())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(doc.Segments))
	}
	if s := doc.Segments[2]; s.Name != "3" || s.State != "virtual" {
		t.Errorf("segments[2] = %+v, want virtual segment 3", s)
	}
	if s := doc.Segments[1]; s.Length == nil || *s.Length != 7 || s.Sequence != "" {
		t.Errorf("segments[1] = %+v, want length 7 and no sequence", s)
	}
	// Numbers come back from encoding/json as float64.
	if v := doc.Segments[0].Tags[0].Value; v != float64(12) {
		t.Errorf("RC value = %v (%T), want 12", v, v)
	}
	if len(doc.Links) != 1 || doc.Links[0].ToOrient != "-" || doc.Links[0].Overlap != "2M" {
		t.Errorf("links = %+v", doc.Links)
	}
	if len(doc.Paths) != 1 || strings.Join(doc.Paths[0].Steps, ",") != "1+,2-" {
		t.Errorf("paths = %+v", doc.Paths)
	}
	if len(doc.Header) != 1 || doc.Header[0].Value != "1.0" {
		t.Errorf("header = %+v", doc.Header)
	}
}
