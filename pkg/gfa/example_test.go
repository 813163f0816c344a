package gfa_test

import (
	"fmt"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

func ExampleParseLine() {
	r, err := gfa.ParseLine("S\tctg1\tACGTTG\tRC:i:300", gfa.LevelStrict)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seg := r.(*gfa.Segment)
	rc, _ := seg.Tag("RC")
	count, _ := rc.Int()

	fmt.Println("Name:", seg.Name)
	fmt.Println("Length:", seg.Length())
	fmt.Println("Read count:", count)
	fmt.Println("Line:", seg.String() == "S\tctg1\tACGTTG\tRC:i:300")
	// Output:
	// Name: ctg1
	// Length: 6
	// Read count: 300
	// Line: true
}

func ExampleTag_Array() {
	tag, _ := gfa.ParseTag("cv:B:S,10,20,30", gfa.LevelStrict)
	a, _ := tag.Array()

	fmt.Println("Elements:", a.Len())
	fmt.Println("Values:", a.Ints)
	fmt.Println("Encoded:", tag)
	// Output:
	// Elements: 3
	// Values: [10 20 30]
	// Encoded: cv:B:S,10,20,30
}

func ExamplePath_ImpliedLinks() {
	p := gfa.NewPath("walk", []gfa.Step{gfa.Fwd("1"), gfa.Rev("2"), gfa.Fwd("3")}, nil)
	for _, j := range p.ImpliedLinks() {
		fmt.Println(j.From, "->", j.To)
	}
	// Output:
	// 1+ -> 2-
	// 2- -> 3+
}
