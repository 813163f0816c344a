package io

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

type document struct {
	Header       []tag         `json:"header"`
	Segments     []segment     `json:"segments"`
	Links        []link        `json:"links"`
	Containments []containment `json:"containments"`
	Paths        []path        `json:"paths"`
}

type tag struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type segment struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence,omitempty"`
	Length   *int   `json:"length,omitempty"`
	State    string `json:"state"`
	Tags     []tag  `json:"tags,omitempty"`
}

type link struct {
	From       string `json:"from"`
	FromOrient string `json:"from_orient"`
	To         string `json:"to"`
	ToOrient   string `json:"to_orient"`
	Overlap    string `json:"overlap"`
	Tags       []tag  `json:"tags,omitempty"`
}

type containment struct {
	Container       string `json:"container"`
	ContainerOrient string `json:"container_orient"`
	Contained       string `json:"contained"`
	ContainedOrient string `json:"contained_orient"`
	Pos             any    `json:"pos"`
	Overlap         string `json:"overlap"`
	Tags            []tag  `json:"tags,omitempty"`
}

type path struct {
	Name     string   `json:"name"`
	Steps    []string `json:"steps"`
	Overlaps []string `json:"overlaps"`
	Tags     []tag    `json:"tags,omitempty"`
}

// WriteGFA writes g as GFA text to w, one record per line in store order.
func WriteGFA(g *graph.Graph, w io.Writer) error {
	if _, err := g.WriteTo(w); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportGFA writes g to a GFA file at path, gzip-compressed when path ends
// in ".gz".
func ExportGFA(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteGFA(g, w) })
}

// WriteJSON encodes the JSON view of g and writes it to w.
// See the package documentation for the format.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the JSON view of g to a file at path.
func ExportJSON(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

func export(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return write(f)
	}
	zw := gzip.NewWriter(f)
	if err := write(zw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}
	return nil
}

func toDocument(g *graph.Graph) document {
	doc := document{
		Header:       tagsOf(g.Header().Tags),
		Segments:     []segment{},
		Links:        []link{},
		Containments: []containment{},
		Paths:        []path{},
	}
	if doc.Header == nil {
		doc.Header = []tag{}
	}
	for _, s := range g.Segments() {
		seg := segment{Name: s.Name, State: graph.Real.String(), Tags: tagsOf(s.Tags)}
		if s.HasSequence() {
			seg.Sequence = s.Sequence
		}
		if s.HasLength() {
			n := s.Length()
			seg.Length = &n
		}
		doc.Segments = append(doc.Segments, seg)
	}
	for _, name := range g.VirtualSegmentNames() {
		doc.Segments = append(doc.Segments, segment{Name: name, State: graph.Virtual.String()})
	}
	for _, l := range g.Links() {
		doc.Links = append(doc.Links, link{
			From:       l.From,
			FromOrient: l.FromOrient.String(),
			To:         l.To,
			ToOrient:   l.ToOrient.String(),
			Overlap:    l.Overlap.String(),
			Tags:       tagsOf(l.Tags),
		})
	}
	for _, c := range g.Containments() {
		doc.Containments = append(doc.Containments, containment{
			Container:       c.Container,
			ContainerOrient: c.ContainerOrient.String(),
			Contained:       c.Contained,
			ContainedOrient: c.ContainedOrient.String(),
			Pos:             positionValue(c.Pos),
			Overlap:         c.Overlap.String(),
			Tags:            tagsOf(c.Tags),
		})
	}
	for _, p := range g.Paths() {
		jp := path{
			Name:     p.Name,
			Steps:    make([]string, len(p.Steps)),
			Overlaps: make([]string, len(p.Overlaps)),
			Tags:     tagsOf(p.Tags),
		}
		for i, s := range p.Steps {
			jp.Steps[i] = s.String()
		}
		for i, o := range p.Overlaps {
			jp.Overlaps[i] = o.String()
		}
		doc.Paths = append(doc.Paths, jp)
	}
	return doc
}

func tagsOf(ts gfa.Tags) []tag {
	if len(ts) == 0 {
		return nil
	}
	out := make([]tag, len(ts))
	for i, t := range ts {
		out[i] = tag{Name: t.Name, Type: t.Type.String(), Value: tagValue(t)}
	}
	return out
}

// tagValue is numeric for i and f tags that decode, the raw text otherwise.
// positionValue is the position as a number, or its raw text when the line
// was read without checks and does not hold an integer.
func positionValue(p gfa.Position) any {
	if n, err := p.Int(); err == nil {
		return n
	}
	return p.String()
}

func tagValue(t gfa.Tag) any {
	switch t.Type {
	case gfa.TypeInt:
		if v, err := t.Int(); err == nil {
			return v
		}
	case gfa.TypeFloat:
		if v, err := t.Float(); err == nil {
			return v
		}
	}
	return t.Raw
}
