package stats

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

func mustParse(t *testing.T, lines ...string) *graph.Graph {
	t.Helper()
	g, err := graph.ParseLines(lines, graph.Options{})
	if err != nil {
		t.Fatalf("ParseLines() error: %v", err)
	}
	return g
}

func chain(t *testing.T) *graph.Graph {
	return mustParse(t,
		"S\t1\tACGT",
		"S\t2\tGG",
		"S\t3\tTTTTT",
		"L\t1\t+\t2\t+\t*",
		"L\t2\t+\t3\t+\t*",
	)
}

func TestLinkEnds(t *testing.T) {
	tests := []struct {
		line     string
		from, to End
	}{
		{"L\ta\t+\tb\t+\t*", End{"a", SideEnd}, End{"b", SideBegin}},
		{"L\ta\t-\tb\t+\t*", End{"a", SideBegin}, End{"b", SideBegin}},
		{"L\ta\t+\tb\t-\t*", End{"a", SideEnd}, End{"b", SideEnd}},
		{"L\ta\t-\tb\t-\t*", End{"a", SideBegin}, End{"b", SideEnd}},
	}
	for _, tt := range tests {
		from, to := LinkEnds(gfa.MustParseLine(tt.line).(*gfa.Link))
		if from != tt.from || to != tt.to {
			t.Errorf("LinkEnds(%q) = %v, %v; want %v, %v", tt.line, from, to, tt.from, tt.to)
		}
	}
}

func TestDeadEnds_Chain(t *testing.T) {
	got := DeadEnds(chain(t))
	want := []End{{"1", SideBegin}, {"3", SideEnd}}
	if !slices.Equal(got, want) {
		t.Errorf("DeadEnds() = %v, want %v", got, want)
	}
}

func TestDeadEnds_ComplementLinkClosesBothEnds(t *testing.T) {
	// 1+ -> 1- joins the end of 1 to itself; the begin stays free.
	g := mustParse(t, "S\t1\t*", "L\t1\t+\t1\t-\t*")
	got := DeadEnds(g)
	if len(got) != 1 || got[0] != (End{"1", SideBegin}) {
		t.Errorf("DeadEnds() = %v, want [1:begin]", got)
	}
}

func TestDeadEnds_IgnoresVirtualSegments(t *testing.T) {
	g := mustParse(t, "S\t1\t*", "L\t1\t+\t2\t+\t*")
	if n := len(DeadEnds(g)); n != 2 {
		t.Errorf("len(DeadEnds()) = %d, want 2", n)
	}
}

func TestConnectedComponents(t *testing.T) {
	g := mustParse(t,
		"S\ta\tAAAA",
		"S\tb\tCC",
		"S\tc\tG",
		"S\td\tTTT",
		"L\tc\t-\ta\t+\t*",
		"L\tb\t+\tb\t+\t*",
	)
	comps := ConnectedComponents(g)
	if len(comps) != 3 {
		t.Fatalf("len(ConnectedComponents()) = %d, want 3: %v", len(comps), comps)
	}
	if !slices.Equal(comps[0], []string{"a", "c"}) {
		t.Errorf("component 0 = %v, want [a c]", comps[0])
	}
	if got := ComponentLengths(g); !slices.Equal(got, []int{5, 2, 3}) {
		t.Errorf("ComponentLengths() = %v, want [5 2 3]", got)
	}
}

func TestChainIsOneComponent(t *testing.T) {
	g := chain(t)
	if got := ComponentLengths(g); !slices.Equal(got, []int{11}) {
		t.Errorf("ComponentLengths() = %v, want [11]", got)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    LengthStats
	}{
		{"empty", nil, LengthStats{}},
		{"single", []int{5}, LengthStats{Count: 1, Min: 5, Q1: 5, Median: 5, Q3: 5, Max: 5, Total: 5, N50: 5}},
		{
			"eight",
			[]int{8, 1, 7, 2, 6, 3, 5, 4},
			LengthStats{Count: 8, Min: 1, Q1: 2, Median: 4, Q3: 6, Max: 8, Total: 36, N50: 6},
		},
		{"chain", []int{4, 2, 5}, LengthStats{Count: 3, Min: 2, Q1: 2, Median: 2, Q3: 4, Max: 5, Total: 11, N50: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.lengths); got != tt.want {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.lengths, got, tt.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	info := Compute(chain(t))

	if got, want := info.Compact(), "ns=3\tnl=2\tcc=1\tde=2\ttl=11\t50=4"; got != want {
		t.Errorf("Compact() = %q, want %q", got, want)
	}
	if info.LargestComponent != 11 {
		t.Errorf("LargestComponent = %d, want 11", info.LargestComponent)
	}
	if p := info.DeadEndPercent(); p < 33.3 || p > 33.4 {
		t.Errorf("DeadEndPercent() = %v, want 33.33", p)
	}
	if s := info.String(); !strings.Contains(s, "N50: 4 bp\n") {
		t.Errorf("String() missing N50 line:\n%s", s)
	}
}
