package transform_test

import (
	"fmt"

	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
	"github.com/matzehuels/gfakit/pkg/graph/transform"
)

func ExampleMergeLinearPaths() {
	g, _ := graph.ParseLines([]string{
		"S\ta\tACG",
		"S\tb\tGTT",
		"S\tc\tTAA",
		"L\ta\t+\tb\t+\t1M",
		"L\tb\t+\tc\t+\t1M",
	}, graph.Options{Level: gfa.LevelStrict})

	res, err := transform.MergeLinearPaths(g)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Merged:", res.Merged)
	fmt.Print(g)
	// Output:
	// Merged: [a_b_c]
	// S	a_b_c	ACGTTAA
}

func ExampleMultiply() {
	g, _ := graph.ParseLines([]string{
		"S\tx\t*",
		"S\tr\t*\tRC:i:40",
		"S\ty\t*",
		"L\tx\t+\tr\t+\t*",
		"L\tr\t+\ty\t+\t*",
	}, graph.Options{Level: gfa.LevelStrict})

	seg, _ := g.Segment("r")
	n, _ := transform.CopyNumber(seg, "RC", 20)

	copies, err := transform.Multiply(g, "r", n, transform.MultiplyOptions{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Copies:", len(copies))
	fmt.Print(g)
	// Output:
	// Copies: 2
	// S	x	*
	// S	r*1	*	RC:i:40
	// S	y	*
	// L	x	+	r*1	+	*
	// L	r*2	+	y	+	*
	// S	r*2	*	RC:i:40
}
