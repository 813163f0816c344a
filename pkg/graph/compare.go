package graph

import (
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

// Equal reports whether g and other have the same segments and the same
// links, compared as multisets of canonical lines. Order, headers,
// containments, paths and comments are ignored.
func (g *Graph) Equal(other *Graph) bool {
	return sameMultiset(lines(g.Segments()), lines(other.Segments())) &&
		sameMultiset(lines(g.Links()), lines(other.Links()))
}

// StrictEqual reports whether g and other have identical segments, links,
// containments, headers and paths in the same order. Comments are ignored.
func (g *Graph) StrictEqual(other *Graph) bool {
	return slices.Equal(lines(g.Segments()), lines(other.Segments())) &&
		slices.Equal(lines(g.Links()), lines(other.Links())) &&
		slices.Equal(lines(g.Containments()), lines(other.Containments())) &&
		slices.Equal(lines(g.Headers()), lines(other.Headers())) &&
		slices.Equal(lines(g.Paths()), lines(other.Paths()))
}

func lines[T gfa.Record](rs []T) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// String returns the graph as GFA text: every record in insertion order,
// each terminated by a newline.
func (g *Graph) String() string {
	var b strings.Builder
	_, _ = g.WriteTo(&b)
	return b.String()
}

// WriteTo writes the graph as GFA text to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, id := range g.order {
		n, err := io.WriteString(w, g.records[id].String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
