// Package transform provides graph rewrites on top of the graph store.
//
// # Linear Path Compaction
//
// Assemblers emit long unbranched runs of segments where every junction has
// exactly one way forward:
//
//	Before: 1 -- 2 -- 3 -- 4 <  (4 branches)
//	After:  1_2_3 -- 4 <
//
// [LinearPaths] finds the maximal runs of length two or more, and
// [MergeLinearPath] merges one run into a single segment. The merged
// sequence is the concatenation of the member sequences read in chain
// direction, each trimmed by the overlap of the link that joins it to its
// predecessor. Links and paths that touched the outer ends of the run are
// rewritten to the merged segment. [MergeLinearPaths] merges every run and
// is a no-op on a graph that has none left.
//
// # Repeat Multiplication
//
// A collapsed repeat appears as one segment with more links than a unique
// region would have. [Multiply] splits it into N copies with identical
// sequence and tags and spreads its links over them. [CopyNumber] derives N
// from a coverage tag.
//
// # Atomicity
//
// Every function here works on a clone of the graph and commits with
// graph.Replace only when the whole rewrite succeeded. A precondition failure
// is an INVALID_ARGUMENT error and leaves the graph unchanged.
package transform
