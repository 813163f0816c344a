package stats

import (
	"slices"

	"github.com/matzehuels/gfakit/pkg/graph"
)

// LengthStats summarizes segment lengths.
type LengthStats struct {
	Count  int
	Min    int
	Q1     int
	Median int
	Q3     int
	Max    int
	Total  int
	N50    int
}

// Lengths computes length statistics over every segment of g.
func Lengths(g *graph.Graph) LengthStats {
	segs := g.Segments()
	lengths := make([]int, len(segs))
	for i, s := range segs {
		lengths[i] = s.Length()
	}
	return Summarize(lengths)
}

// Summarize computes length statistics over arbitrary lengths. The input is
// not modified.
func Summarize(lengths []int) LengthStats {
	n := len(lengths)
	if n == 0 {
		return LengthStats{}
	}
	sorted := slices.Clone(lengths)
	slices.Sort(sorted)

	at := func(i int) int { return sorted[max(i, 0)] }

	st := LengthStats{
		Count:  n,
		Min:    sorted[0],
		Q1:     at(n/4 - 1),
		Median: at(n/2 - 1),
		Q3:     at(3*n/4 - 1),
		Max:    sorted[n-1],
	}
	for _, l := range sorted {
		st.Total += l
	}
	st.N50 = n50(sorted, st.Total)
	return st
}

func n50(ascending []int, total int) int {
	running := 0
	for i := len(ascending) - 1; i >= 0; i-- {
		running += ascending[i]
		if 2*running >= total {
			return ascending[i]
		}
	}
	return 0
}
