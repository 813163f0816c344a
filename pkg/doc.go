// Package pkg provides the core libraries of gfakit, a toolkit for genome
// assembly graphs in the Graphical Fragment Assembly (GFA 1) format.
//
// # Overview
//
// A GFA file describes an assembly as segments (sequences), links (overlaps
// between segment ends), containments and paths. The pkg directory is
// organized into these areas:
//
//  1. [gfa] - Record model: parsing, validation and formatting of single lines
//  2. [graph] - The record store with name indexes, loading and validation
//  3. [graph/stats] and [graph/transform] - Analysis and editing of a graph
//  4. [io] - Reading and writing files (GFA, gzip, JSON)
//  5. [render] - Graphviz visualization and SVG conversion
//
// # Architecture
//
// The typical data flow through gfakit:
//
//	GFA file (optionally .gz)
//	         ↓
//	    [io] package (read lines)
//	         ↓
//	    [graph] package (parse records, resolve references, validate)
//	         ↓
//	    [graph/stats] / [graph/transform] (report, compact, multiply)
//	         ↓
//	    GFA/JSON/DOT/SVG/PDF/PNG output
//
// # Quick Start
//
// Load a graph, merge its unbranched chains and write it back:
//
//	import (
//	    "github.com/matzehuels/gfakit/pkg/graph"
//	    "github.com/matzehuels/gfakit/pkg/graph/transform"
//	    "github.com/matzehuels/gfakit/pkg/io"
//	)
//
//	g, _ := io.ImportGFA("assembly.gfa.gz", graph.Options{})
//	_, _ = transform.MergeLinearPaths(g)
//	_ = io.ExportGFA(g, "compact.gfa")
//
// # Main Packages
//
// [gfa] - One type per record kind (header, segment, link, containment,
// path) with optional typed tags. Records are checked at one of four
// validation levels.
//
// [graph] - An ordered store of records that keeps every name defined,
// referenced only (virtual) or absent. Loading is atomic: a bad line
// leaves the graph untouched.
//
// [graph/stats] - Segment ends, dead ends, connected components and length
// statistics including N50.
//
// [graph/transform] - Linear path detection and merging, and multiplication
// of repeat segments by copy number.
//
// [observability] - Hooks for load progress, validation and transforms.
//
// [cache] - File cache used by the CLI for statistics reports.
//
// [errors] - Structured errors with codes and referencing line lists.
//
// [render/nodelink] - Node-link diagrams using Graphviz.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/graph/...     # Specific package
//	go test -run Example ./...  # Examples only
//
// [gfa]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/gfa
// [graph]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/graph
// [graph/stats]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/graph/stats
// [graph/transform]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/graph/transform
// [io]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/render/nodelink
// [observability]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/gfakit/pkg/errors
package pkg
