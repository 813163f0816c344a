package graph_test

import (
	"fmt"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
)

func ExampleParse() {
	text := "H\tVN:Z:1.0\n" +
		"S\t1\tACGT\n" +
		"S\t2\tGGA\n" +
		"L\t1\t+\t2\t-\t*\n"

	g, err := graph.Parse(text, graph.Options{Level: gfa.LevelStrict})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Segments:", g.SegmentNames())
	fmt.Println("Links:", len(g.Links()))
	fmt.Println("Round trip:", g.String() == text)
	// Output:
	// Segments: [1 2]
	// Links: 1
	// Round trip: true
}

func ExampleGraph_Validate() {
	g := graph.New(graph.Options{Level: gfa.LevelDeferred})

	// Forward references are accepted while building.
	_ = g.AddLine("L\t1\t+\t2\t+\t*")
	_ = g.AddLine("S\t1\t*")
	fmt.Println("State of 2:", g.State("2"))

	err := g.Validate()
	fmt.Println("Missing:", errors.Is(err, errors.ErrCodeLineMissing))

	_ = g.AddLine("S\t2\t*")
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// State of 2: virtual
	// Missing: true
	// Valid: true
}
