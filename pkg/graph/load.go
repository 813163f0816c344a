package graph

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/observability"
)

// Parse builds a graph from GFA text. See ParseLines.
func Parse(text string, opts Options) (*Graph, error) {
	return ParseLines(strings.Split(text, "\n"), opts)
}

// ParseLines builds a graph from a sequence of GFA lines. Blank lines are
// skipped. When the level is at least 1 the graph is validated once all lines
// are in.
func ParseLines(lines []string, opts Options) (*Graph, error) {
	g := New(opts)
	if err := g.Load("lines", slices.Values(lines)); err != nil {
		return nil, err
	}
	return g, nil
}

// Load appends every line of the sequence, then validates the graph when the
// level is at least 1. source names the input in observer events.
//
// Load is atomic: if any line fails, or validation fails, the graph keeps
// its previous contents. Errors are prefixed with the 1-based line number.
func (g *Graph) Load(source string, lines iter.Seq[string]) error {
	start := time.Now()
	g.obs.OnLoadStart(source)

	work := g.Clone()
	n, err := work.appendAll(source, lines)
	if err == nil && g.options.Level >= gfa.LevelDeferred {
		err = work.Validate()
	}
	g.obs.OnLoadComplete(source, n, time.Since(start), err)
	if err != nil {
		return err
	}
	g.Replace(work)
	return nil
}

func (g *Graph) appendAll(source string, lines iter.Seq[string]) (int, error) {
	n := 0
	for line := range lines {
		n++
		if n%observability.DefaultProgressInterval == 0 {
			g.obs.OnLoadProgress(source, n)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := g.AddLine(line); err != nil {
			return n, fmt.Errorf("line %d: %w", n, err)
		}
	}
	return n, nil
}
