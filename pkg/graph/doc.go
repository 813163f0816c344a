// Package graph provides the in-memory GFA graph store.
//
// # Overview
//
// A [Graph] owns every record of one GFA graph. It keeps records in insertion
// order so that serialization reproduces the input, maintains name indices
// for segments and paths, and tracks references between records without
// requiring any particular append order.
//
// # Reference Resolution
//
// Every segment name mentioned by a link, containment or path is an entity
// with one of three states:
//
//   - [Absent]: nothing mentions the name
//   - [Virtual]: referenced, but no segment with that name has been added yet
//   - [Real]: the defining segment is in the graph
//
// Forward references are legal while a graph is being built. A link to a
// segment that does not exist yet simply makes that segment Virtual; adding
// the segment later makes it Real. Deleting a segment that is still
// referenced turns it back into Virtual; deleting it when nothing refers to
// it forgets the name entirely.
//
// With [Options].StrictOrdering set, referencing an Absent name fails
// immediately with LINE_MISSING instead.
//
// # Validation
//
// [Graph.Validate] is the explicit integrity sweep. It reports segments that
// are still Virtual and path junctions that have no matching link. At level
// 1 it also runs the content checks that parsing deferred. Bulk loads
// ([Parse], [ParseLines], [Graph.Load]) call it once at the end when the
// level is at least 1.
//
// # Atomicity
//
// Every mutating call either succeeds completely or leaves the graph exactly
// as it was. Algorithms that rewrite many records work on a [Graph.Clone]
// and commit with [Graph.Replace].
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must serialize
// access to a graph externally.
package graph
