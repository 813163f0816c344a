package transform

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

func mustParse(t *testing.T, lines ...string) *graph.Graph {
	t.Helper()
	g, err := graph.ParseLines(lines, graph.Options{Level: gfa.LevelStrict})
	if err != nil {
		t.Fatalf("ParseLines() error: %v", err)
	}
	return g
}

func text(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestLinearPaths(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name: "stops at branch",
			lines: []string{
				"S\t1\t*", "S\t2\t*", "S\t3\t*", "S\t4\t*", "S\t5\t*",
				"L\t1\t+\t2\t+\t*", "L\t2\t+\t3\t+\t*", "L\t3\t+\t4\t+\t*", "L\t3\t+\t5\t+\t*",
			},
			want: []string{"1+,2+,3+"},
		},
		{
			name:  "reverse step",
			lines: []string{"S\ta\t*", "S\tb\t*", "L\ta\t+\tb\t-\t*"},
			want:  []string{"a+,b-"},
		},
		{
			name:  "cycle excluded",
			lines: []string{"S\t1\t*", "S\t2\t*", "L\t1\t+\t2\t+\t*", "L\t2\t+\t1\t+\t*"},
			want:  nil,
		},
		{
			name:  "starts at first added extremity",
			lines: []string{"S\t2\t*", "S\t1\t*", "L\t1\t+\t2\t+\t*"},
			want:  []string{"2-,1-"},
		},
		{
			name:  "self link is not a chain",
			lines: []string{"S\t1\t*", "L\t1\t+\t1\t+\t*"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, chain := range LinearPaths(mustParse(t, tt.lines...)) {
				got = append(got, chainString(chain))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("LinearPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func assembly(t *testing.T) *graph.Graph {
	return mustParse(t,
		"S\t0\tAAA",
		"S\t1\tACGT",
		"S\t2\tGTCC",
		"S\t3\tCCA",
		"S\t4\tT",
		"S\t5\tG",
		"L\t0\t+\t1\t+\t*",
		"L\t5\t+\t1\t+\t*",
		"L\t1\t+\t2\t+\t2M",
		"L\t2\t+\t3\t+\t2M",
		"L\t3\t+\t4\t+\t*",
		"L\t3\t+\t5\t-\t*",
		"P\tp\t0+,1+,2+,3+,4+\t*",
		"P\tq\t4-,3-,2-,1-\t*",
	)
}

func TestMergeLinearPaths(t *testing.T) {
	g := assembly(t)

	res, err := MergeLinearPaths(g)
	if err != nil {
		t.Fatalf("MergeLinearPaths() error: %v", err)
	}
	if !slices.Equal(res.Merged, []string{"1_2_3"}) || res.Removed != 3 || res.Skipped != 0 {
		t.Errorf("MergeLinearPaths() = %+v", res)
	}

	want := text(
		"S\t0\tAAA",
		"S\t1_2_3\tACGTCCA",
		"S\t4\tT",
		"S\t5\tG",
		"L\t0\t+\t1_2_3\t+\t*",
		"L\t5\t+\t1_2_3\t+\t*",
		"L\t1_2_3\t+\t4\t+\t*",
		"L\t1_2_3\t+\t5\t-\t*",
		"P\tp\t0+,1_2_3+,4+\t*",
		"P\tq\t4-,1_2_3-\t*",
	)
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() after merge: %v", err)
	}
	for _, name := range []string{"1", "2", "3"} {
		if g.State(name) != graph.Absent {
			t.Errorf("State(%s) = %v, want absent", name, g.State(name))
		}
	}
}

func TestMergeLinearPaths_Idempotent(t *testing.T) {
	g := assembly(t)
	if _, err := MergeLinearPaths(g); err != nil {
		t.Fatal(err)
	}
	before := g.String()

	res, err := MergeLinearPaths(g)
	if err != nil {
		t.Fatalf("second MergeLinearPaths() error: %v", err)
	}
	if len(res.Merged) != 0 {
		t.Errorf("second run merged %v", res.Merged)
	}
	if g.String() != before {
		t.Error("second run changed the graph")
	}
}

func TestMergeLinearPath_Preconditions(t *testing.T) {
	chain := []gfa.Step{gfa.Fwd("1"), gfa.Fwd("2"), gfa.Fwd("3")}
	tests := []struct {
		name  string
		extra string
		chain []gfa.Step
	}{
		{"single segment", "", chain[:1]},
		{"branching junction", "", []gfa.Step{gfa.Fwd("0"), gfa.Fwd("1")}},
		{"wrong orientation", "", []gfa.Step{gfa.Fwd("1"), gfa.Rev("2")}},
		{"undefined member", "", []gfa.Step{gfa.Fwd("1"), gfa.Fwd("9")}},
		{"repeated member", "", []gfa.Step{gfa.Fwd("1"), gfa.Fwd("1")}},
		{"containment", "C\t2\t+\t4\t+\t0\t*", chain},
		{"partial path", "P\tr\t2+,3+\t*", chain},
		{"name in use", "S\t1_2_3\t*", chain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := assembly(t)
			if tt.extra != "" {
				if err := g.AddLine(tt.extra); err != nil {
					t.Fatal(err)
				}
			}
			before := g.String()

			_, err := MergeLinearPath(g, tt.chain)
			if !errors.Is(err, errors.ErrCodeArgument) {
				t.Fatalf("MergeLinearPath() error = %v, want INVALID_ARGUMENT", err)
			}
			if g.String() != before {
				t.Error("failed merge changed the graph")
			}
		})
	}
}

func TestMergeLinearPaths_SkipsUnmergeable(t *testing.T) {
	g := assembly(t)
	if err := g.AddLine("P\tr\t2+,3+\t*"); err != nil {
		t.Fatal(err)
	}
	before := g.String()

	res, err := MergeLinearPaths(g)
	if err != nil {
		t.Fatalf("MergeLinearPaths() error: %v", err)
	}
	if res.Skipped != 1 || len(res.Merged) != 0 {
		t.Errorf("MergeLinearPaths() = %+v, want one skipped chain", res)
	}
	if g.String() != before {
		t.Error("graph changed although nothing was merged")
	}
}

func TestMergeLinearPath_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		chain []gfa.Step
		want  string
	}{
		{
			name:  "reverse member",
			lines: []string{"S\ta\tACG", "S\tb\tTTC", "L\ta\t+\tb\t-\t1M"},
			chain: []gfa.Step{gfa.Fwd("a"), gfa.Rev("b")},
			want:  "S\ta_b\tACGAA",
		},
		{
			name:  "link stored as complement",
			lines: []string{"S\ta\tACG", "S\tb\tTTC", "L\tb\t+\ta\t-\t1M"},
			chain: []gfa.Step{gfa.Fwd("a"), gfa.Rev("b")},
			want:  "S\ta_b\tACGAA",
		},
		{
			name: "placeholders with lengths and counts",
			lines: []string{
				"S\ta\t*\tLN:i:10\tKC:i:5",
				"S\tb\t*\tLN:i:8\tKC:i:7",
				"L\ta\t+\tb\t+\t3M",
			},
			chain: []gfa.Step{gfa.Fwd("a"), gfa.Fwd("b")},
			want:  "S\ta_b\t*\tLN:i:15\tKC:i:12",
		},
		{
			name:  "sequence with length tag",
			lines: []string{"S\ta\tAC\tLN:i:2", "S\tb\tGT\tRC:i:1", "L\ta\t+\tb\t+\t*"},
			chain: []gfa.Step{gfa.Fwd("a"), gfa.Fwd("b")},
			want:  "S\ta_b\tACGT\tLN:i:4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.lines...)
			merged, err := MergeLinearPath(g, tt.chain)
			if err != nil {
				t.Fatalf("MergeLinearPath() error: %v", err)
			}
			if got := merged.String(); got != tt.want {
				t.Errorf("merged = %q, want %q", got, tt.want)
			}
			if names := g.SegmentNames(); len(names) != 1 {
				t.Errorf("SegmentNames() = %v, want only the merged segment", names)
			}
			if n := len(g.Links()); n != 0 {
				t.Errorf("len(Links()) = %d, want 0", n)
			}
		})
	}
}
